package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gameforge/arcade-dashboard/internal/config"
	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/pkg/cache"
	"github.com/gameforge/arcade-dashboard/pkg/pagination"
)

const upstreamTools = `{"items":[
	{"name":"CreateIssue","fully_qualified_name":"GitHub.CreateIssue","description":"Create a GitHub issue",
	 "toolkit":{"name":"GitHub","version":"1.2.0"},"requirements":{"authorization":{"status":"active"}}},
	{"name":"SendMessage","fully_qualified_name":"Slack.SendMessage","description":"Send a Slack message",
	 "toolkit":{"name":"Slack"}}
],"total_count":57}`

func liveApp(upstream *httptest.Server) *App {
	cfg := mockConfig()
	cfg.Arcade = config.ArcadeConfig{
		APIKey:        "arc_test_key",
		BaseURL:       upstream.URL,
		Timeout:       5 * time.Second,
		RetryAttempts: 1,
		ToolsEndpoint: "/v1/tools",
	}
	app, err := NewApp(cfg, slog.New(slog.NewTextHandler(GinkgoWriter, nil)))
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(app.Shutdown)
	return app
}

var _ = Describe("TestLiveMode", func() {
	Context("proxying tools from the Arcade API", func() {
		var (
			upstream *httptest.Server
			hits     atomic.Int32
			status   atomic.Int32
		)

		BeforeEach(func() {
			hits.Store(0)
			status.Store(http.StatusOK)
			upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()
				hits.Add(1)
				Expect(r.Header.Get("Authorization")).To(Equal("Bearer arc_test_key"))
				w.Header().Set("Content-Type", "application/json")
				switch code := int(status.Load()); {
				case code != http.StatusOK:
					w.WriteHeader(code)
					_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"Invalid API key"}`))
				case r.URL.Path == "/v1/tools":
					_, _ = w.Write([]byte(upstreamTools))
				default:
					w.WriteHeader(http.StatusNotFound)
					_, _ = w.Write([]byte(`{"message":"no such tool"}`))
				}
			}))
			DeferCleanup(upstream.Close)
		})

		It("should normalize the upstream listing", func() {
			app := liveApp(upstream)
			actual, rs, err := setupApiTestWithApp[pagination.Page[models.Tool]](app, http.MethodGet, "/api/tools?per_page=2", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(rs.Header.Get(cache.HeaderCache)).To(BeEmpty())
			Expect(actual.Total).To(Equal(57))
			Expect(actual.PerPage).To(Equal(2))
			Expect(*actual.HasMore).To(BeTrue())
			Expect(actual.Data[0].ID).To(Equal("GitHub.CreateIssue"))
			Expect(actual.Data[0].Category).To(Equal("GitHub"))
			Expect(actual.Data[0].RequiresAuth).To(BeTrue())
			Expect(actual.Data[1].RequiresAuth).To(BeFalse())

			By("never caching live tool reads")
			_, _, err = setupApiTestWithApp[pagination.Page[models.Tool]](app, http.MethodGet, "/api/tools?per_page=2", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(hits.Load()).To(BeEquivalentTo(2))
		})

		It("should default per_page to the live window", func() {
			actual, _, err := setupApiTestWithApp[pagination.Page[models.Tool]](liveApp(upstream), http.MethodGet, "/api/tools", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(actual.PerPage).To(Equal(50))
		})

		It("should forward the upstream status and message", func() {
			status.Store(http.StatusUnauthorized)
			actual, rs, err := setupApiTestWithApp[ErrorResponse](liveApp(upstream), http.MethodGet, "/api/tools", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusUnauthorized))
			Expect(actual.Error).To(Equal("Invalid API key"))
			Expect(hits.Load()).To(BeEquivalentTo(1))
		})

		It("should map an unknown upstream tool to 404", func() {
			actual, rs, err := setupApiTestWithApp[ErrorResponse](liveApp(upstream), http.MethodGet, "/api/tools/Nope.Nothing", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusNotFound))
			Expect(actual.Error).To(Equal("Tool not found"))
		})

		It("should report a configured key", func() {
			actual, _, err := setupApiTestWithApp[ConfigStatus](liveApp(upstream), http.MethodGet, "/api/config/status", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(actual.Configured).To(BeTrue())
			Expect(actual.Message).To(Equal("API key configured"))
			Expect(actual.Mode).To(Equal(models.ModeLive))
		})
	})

	Context("serving the prebuilt UI", func() {

		It("should serve files and fall back to index.html", func() {
			dir := GinkgoT().TempDir()
			Expect(os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>dashboard</html>"), 0o600)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600)).To(Succeed())

			cfg := mockConfig()
			cfg.StaticAssetsDir = dir
			app, err := NewApp(cfg, slog.New(slog.NewTextHandler(GinkgoWriter, nil)))
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(app.Shutdown)

			rs := doRequest(app, http.MethodGet, "/app.js", nil)
			Expect(rs.StatusCode).To(Equal(http.StatusOK))

			rs = doRequest(app, http.MethodGet, "/tools/tool-github-1", nil)
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(rs.Header.Get("Content-Type")).To(ContainSubstring("text/html"))

			rs = doRequest(app, http.MethodGet, "/api/unknown", nil)
			Expect(rs.StatusCode).To(Equal(http.StatusNotFound))
			Expect(rs.Header.Get("Content-Type")).To(Equal("application/json"))
		})
	})
})
