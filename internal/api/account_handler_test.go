package api

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gameforge/arcade-dashboard/internal/mocks"
	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/pkg/cache"
)

var _ = Describe("TestAccountHandlers", func() {
	Context("testing user and auth status", func() {

		It("should return the current user", func() {
			expected := mocks.GetUserMock()
			actual, rs, err := setupApiTest[models.User](http.MethodGet, "/api/user", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(actual).To(Equal(expected))
		})

		It("should return the auth status", func() {
			actual, rs, err := setupApiTest[models.AuthStatus](http.MethodGet, "/api/auth/status", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(actual.Connections).To(HaveLen(4))
			Expect(actual.User.ID).To(Equal(mocks.GetUserMock().ID))
		})
	})

	Context("testing config status", func() {

		It("should report an unconfigured key in mock mode", func() {
			actual, rs, err := setupApiTest[ConfigStatus](http.MethodGet, "/api/config/status", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(actual.Configured).To(BeFalse())
			Expect(actual.Message).To(Equal("API key not found in environment"))
			Expect(actual.Mode).To(Equal(models.ModeMock))
		})
	})

	Context("testing the dashboard summary", func() {

		It("should aggregate every source", func() {
			actual, rs, err := setupApiTest[DashboardSummary](http.MethodGet, "/api/dashboard", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(actual.Mode).To(Equal(models.ModeMock))
			Expect(actual.ToolCount).To(Equal(12))
			Expect(actual.ServerCount).To(Equal(9))
			Expect(actual.ActiveServerCount).To(Equal(8))
			Expect(actual.TotalConnections).To(Equal(4))
			Expect(actual.ConnectedAccounts).To(Equal(3))
			Expect(actual.User).NotTo(BeNil())
		})
	})

	Context("testing cache administration", Ordered, func() {

		It("should report stats and invalidate", func() {
			_, _, err := setupApiTest[models.User](http.MethodGet, "/api/user", nil)
			Expect(err).NotTo(HaveOccurred())

			stats, rs, err := setupApiTest[map[string]cache.Stats](http.MethodGet, "/api/cache/stats", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(stats).To(HaveKey("catalog"))
			Expect(stats["account"].Size).To(BeNumerically(">=", 1))

			_, rs, err = setupApiTest[any](http.MethodDelete, "/api/cache", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusNoContent))

			stats, _, err = setupApiTest[map[string]cache.Stats](http.MethodGet, "/api/cache/stats", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats["account"].Size).To(Equal(0))
			Expect(stats["catalog"].Size).To(Equal(0))
		})
	})

	Context("testing health endpoints", func() {

		It("should answer healthz and readyz", func() {
			health, rs, err := setupApiTest[HealthCheck](http.MethodGet, "/healthz", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(health.Status).To(Equal("available"))

			ready, rs, err := setupApiTest[HealthCheck](http.MethodGet, "/readyz", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(ready.SystemInfo["mode"]).To(Equal(models.ModeMock))
			Expect(ready.SystemInfo["chat_agent"]).To(Equal("mock"))
		})

		It("should answer JSON 404 for unknown API routes", func() {
			actual, rs, err := setupApiTest[ErrorResponse](http.MethodGet, "/api/nope", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusNotFound))
			Expect(actual.Error).NotTo(BeEmpty())
		})
	})
})
