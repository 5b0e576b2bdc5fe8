package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/job-board/internal/domain"
	"github.com/honeycarbs/job-board/internal/listview"
	"github.com/honeycarbs/job-board/pkg/logging"
)

// reserved query parameters of the JSON API; everything else is forwarded as a filter
var apiParams = map[string]struct{}{
	"page":     {},
	"limit":    {},
	"q":        {},
	"category": {},
}

type handlers struct {
	logger   *logging.Logger
	jobs     listview.Fetcher
	sessions *sessionStore
}

func newHandlers(log *logging.Logger, jobs listview.Fetcher, sessionTTL time.Duration) *handlers {
	return &handlers{
		logger: log,
		jobs:   jobs,
		sessions: newSessionStore(sessionTTL, func() *listview.Controller {
			return listview.NewController(jobs, log)
		}),
	}
}

// session returns the caller's session, issuing a cookie for new visitors.
// Only the listing page starts sessions.
func (h *handlers) session(c *gin.Context) *session {
	if sess, ok := h.existing(c); ok {
		return sess
	}

	id, sess := h.sessions.create()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	h.logger.Debug("session started", "sessions", h.sessions.len())
	return sess
}

// existing returns the session named by the cookie, if it is still live
func (h *handlers) existing(c *gin.Context) (*session, bool) {
	id, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}
	return h.sessions.lookup(id)
}

// fetchContext keeps request values but not its cancellation: the result is
// stored in the session and outlives the request that triggered it
func fetchContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

type pageData struct {
	View       listview.View
	Categories []domain.Category
	Empty      string
}

func (h *handlers) index(c *gin.Context) {
	sess := h.session(c)
	sess.ensureMounted(fetchContext(c))

	if q, ok := c.GetQuery("q"); ok {
		sess.ctrl.SetSearch(q)
	}
	if category, ok := c.GetQuery("category"); ok {
		sess.ctrl.SetCategory(parseCategory(category))
	}

	c.HTML(http.StatusOK, "page", pageData{
		View:       sess.ctrl.View(),
		Categories: domain.Categories,
		Empty:      listview.EmptyMessage,
	})
}

// action runs fn against the caller's session and redirects to the listing.
// Without a live session there is nothing to act on; the listing starts one.
func (h *handlers) action(fn func(ctx context.Context, sess *session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := h.existing(c); ok {
			fn(fetchContext(c), sess)
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func (h *handlers) nextPage(ctx context.Context, sess *session) {
	sess.ctrl.Next(ctx)
}

func (h *handlers) previousPage(ctx context.Context, sess *session) {
	sess.ctrl.Previous(ctx)
}

func (h *handlers) clearFilters(_ context.Context, sess *session) {
	sess.ctrl.ClearFilters()
}

func (h *handlers) clearSearch(_ context.Context, sess *session) {
	sess.ctrl.SetSearch("")
}

func (h *handlers) clearCategory(_ context.Context, sess *session) {
	sess.ctrl.SetCategory("")
}

func (h *handlers) retry(ctx context.Context, sess *session) {
	// the reload replaces any pending initial mount
	sess.mount.Do(func() {})
	sess.ctrl.Reload(ctx)
}

// listJobs serves one page as a JSON envelope. Successful responses also carry
// the page filtered by q and category under "visible".
func (h *handlers) listJobs(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", listview.PageSize)

	category := domain.Category(c.Query("category"))
	if category != "" && !domain.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, domain.Failed("unknown category "+strconv.Quote(string(category)), http.StatusBadRequest))
		return
	}

	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if _, reserved := apiParams[key]; reserved || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}

	env := h.jobs.FetchJobs(c.Request.Context(), page, limit, filters)
	if !env.Success {
		c.JSON(failureStatus(env.Status), env)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    env.Data,
		"total":   env.Total,
		"page":    env.Page,
		"limit":   env.Limit,
		"visible": listview.Filter(env.Data, c.Query("q"), category),
	})
}

// intQuery parses key; a malformed value becomes 0 so the job service rejects it
func intQuery(c *gin.Context, key string, def int) int {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func failureStatus(status int) int {
	if status < http.StatusBadRequest || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

// parseCategory maps unknown values to "All Categories"
func parseCategory(raw string) domain.Category {
	category := domain.Category(raw)
	if !domain.ValidCategory(category) {
		return ""
	}
	return category
}
