package api

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/pkg/pagination"
)

var _ = Describe("TestServersHandler", func() {
	Context("testing the servers handlers", func() {

		It("should page through servers", func() {
			actual, rs, err := setupApiTest[pagination.Page[models.Server]](http.MethodGet, "/api/servers?page=2&per_page=4", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(actual.Total).To(Equal(9))
			Expect(actual.Data).To(HaveLen(4))
			Expect(actual.Data[0].ID).To(Equal("server-notion"))
			Expect(*actual.HasMore).To(BeTrue())
		})

		It("should answer an empty page far past the end", func() {
			actual, rs, err := setupApiTest[pagination.Page[models.Server]](http.MethodGet, "/api/servers?page=922337203685477581&per_page=20", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(actual.Total).To(Equal(9))
			Expect(actual.Data).To(BeEmpty())
			Expect(*actual.HasMore).To(BeFalse())
		})

		It("should filter servers by status", func() {
			actual, _, err := setupApiTest[pagination.Page[models.Server]](http.MethodGet, "/api/servers?status=inactive", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(actual.Total).To(Equal(1))
			Expect(actual.Data[0].ID).To(Equal("server-figma"))
		})

		It("should return a server with its tools", func() {
			actual, rs, err := setupApiTest[models.ServerDetail](http.MethodGet, "/api/servers/server-google", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(actual.Tools).To(HaveLen(3))
		})

		It("should answer 404 for an unknown server", func() {
			actual, rs, err := setupApiTest[ErrorResponse](http.MethodGet, "/api/servers/server-missing", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusNotFound))
			Expect(actual.Error).To(Equal("Server not found"))
		})

		It("should list distinct categories", func() {
			actual, _, err := setupApiTest[models.CategoryList](http.MethodGet, "/api/categories", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(actual.Data).To(Equal([]string{"communication", "design", "developer-tools", "payments", "productivity", "sales"}))
			Expect(actual.Total).To(Equal(6))
		})
	})
})
