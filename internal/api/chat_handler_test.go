package api

import (
	"log/slog"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gameforge/arcade-dashboard/internal/chat"
)

var _ = Describe("TestChatHandler", func() {
	Context("testing the chat endpoints", Ordered, func() {
		var conversationID string

		It("should reply through the mock agent", func() {
			body := strings.NewReader(`{"message":"show me slack tools","context":{"currentPage":"/tools"}}`)
			actual, rs, err := setupApiTest[chat.Reply](http.MethodPost, "/api/chat", body)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(actual.Agent).To(Equal(chat.AgentMock))
			Expect(actual.ConversationID).NotTo(BeEmpty())
			Expect(actual.Message.Role).To(Equal(chat.RoleAssistant))
			Expect(actual.Message.Content).To(ContainSubstring(`"show me slack tools"`))
			conversationID = actual.ConversationID
		})

		It("should return the stored conversation", func() {
			actual, rs, err := setupApiTest[ConversationEnvelope](http.MethodGet, "/api/chat/"+conversationID, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
			Expect(actual.Messages).To(HaveLen(2))
			Expect(actual.Messages[0].Role).To(Equal(chat.RoleUser))
			Expect(actual.Messages[1].Role).To(Equal(chat.RoleAssistant))
		})

		It("should rate limit a busy conversation", func() {
			body := strings.NewReader(`{"message":"again","context":{"conversationId":"` + conversationID + `"}}`)
			actual, rs, err := setupApiTest[ErrorResponse](http.MethodPost, "/api/chat", body)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusTooManyRequests))
			Expect(rs.Header.Get("Retry-After")).NotTo(BeEmpty())
			Expect(actual.Error).To(Equal(chat.ErrRateLimited.Error()))
		})

		It("should delete the conversation", func() {
			_, rs, err := setupApiTest[any](http.MethodDelete, "/api/chat/"+conversationID, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusNoContent))

			_, rs, err = setupApiTest[ErrorResponse](http.MethodDelete, "/api/chat/"+conversationID, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("should reject bad requests", func() {
			_, rs, err := setupApiTest[ErrorResponse](http.MethodPost, "/api/chat", strings.NewReader(`{"message":`))
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusBadRequest))

			actual, rs, err := setupApiTest[ErrorResponse](http.MethodPost, "/api/chat", strings.NewReader(`{"message":"   "}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(actual.Error).To(Equal(chat.ErrEmptyMessage.Error()))
		})
	})

	Context("with a zero rate interval", func() {
		It("should accept back-to-back messages", func() {
			cfg := mockConfig()
			cfg.Chat.RateInterval = 0
			app, err := NewApp(cfg, slog.New(slog.NewTextHandler(GinkgoWriter, nil)))
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(app.Shutdown)

			first, rs, err := setupApiTestWithApp[chat.Reply](app, http.MethodPost, "/api/chat", strings.NewReader(`{"message":"one"}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))

			body := strings.NewReader(`{"message":"two","context":{"conversationId":"` + first.ConversationID + `"}}`)
			_, rs, err = setupApiTestWithApp[chat.Reply](app, http.MethodPost, "/api/chat", body)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs.StatusCode).To(Equal(http.StatusOK))
		})
	})
})
