package api

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/pkg/cache"
	"github.com/gameforge/arcade-dashboard/pkg/pagination"
)

var _ = Describe("TestToolsHandler", func() {
	Context("listing tools from the mock provider", func() {

		It("should return the first page", func() {
			By("requesting two tools per page")
			actual, rs, err := setupApiTest[pagination.Page[models.Tool]](http.MethodGet, "/api/tools?per_page=2", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))

			By("should match the happy path page")
			Expect(actual.Data).To(HaveLen(2))
			Expect(actual.Data[0].ID).To(Equal("tool-github-1"))
			Expect(actual.Data[1].ID).To(Equal("tool-github-2"))
			Expect(actual.Total).To(Equal(12))
			Expect(actual.Page).To(Equal(1))
			Expect(actual.PerPage).To(Equal(2))
			Expect(actual.HasMore).NotTo(BeNil())
			Expect(*actual.HasMore).To(BeTrue())
		})

		It("should default per_page to the mock page size", func() {
			actual, _, err := setupApiTest[pagination.Page[models.Tool]](http.MethodGet, "/api/tools", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(actual.PerPage).To(Equal(20))
			Expect(actual.Data).To(HaveLen(12))
			Expect(*actual.HasMore).To(BeFalse())
		})

		It("should compose category and search filters", func() {
			actual, _, err := setupApiTest[pagination.Page[models.Tool]](http.MethodGet, "/api/tools?category=productivity&q=create", nil)
			Expect(err).NotTo(HaveOccurred())

			ids := make([]string, 0, len(actual.Data))
			for _, t := range actual.Data {
				ids = append(ids, t.ID)
			}
			Expect(ids).To(ConsistOf("tool-gdocs-1", "tool-jira-1", "tool-notion-1", "tool-linear-1"))
			Expect(ids).NotTo(ContainElement("tool-gdrive-1"))
			Expect(actual.Total).To(Equal(4))
		})

		It("should serve repeated reads from the cache", func() {
			_, first, err := setupApiTest[pagination.Page[models.Tool]](http.MethodGet, "/api/tools?page=2&per_page=5", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Header.Get(cache.HeaderCache)).To(Equal("MISS"))

			_, second, err := setupApiTest[pagination.Page[models.Tool]](http.MethodGet, "/api/tools?page=2&per_page=5", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Header.Get(cache.HeaderCache)).To(Equal("HIT"))
		})
	})

	Context("fetching a single tool", func() {

		It("should return the tool", func() {
			actual, rs, err := setupApiTest[models.ToolDetail](http.MethodGet, "/api/tools/tool-slack-1", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(actual.ID).To(Equal("tool-slack-1"))
			Expect(actual.Category).To(Equal("communication"))
		})

		It("should answer 404 for an unknown tool", func() {
			actual, rs, err := setupApiTest[ErrorResponse](http.MethodGet, "/api/tools/does-not-exist", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusNotFound))
			Expect(actual.Error).To(Equal("Tool not found"))
		})
	})
})
