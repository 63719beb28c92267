package http

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"
	"wellness-service/internal/infrastructure/companion"
	svc "wellness-service/internal/service"
)

// maxTrendDays caps the trailing-window size a client may request.
const maxTrendDays = 90

// Handler exposes the journal, analytics, and companion endpoints.
type Handler struct {
	entries   service.EntryService
	analytics service.AnalyticsService
	companion *companion.Client // nil when disabled
}

// NewHandler creates a new HTTP handler
func NewHandler(entries service.EntryService, analytics service.AnalyticsService, comp *companion.Client) *Handler {
	return &Handler{
		entries:   entries,
		analytics: analytics,
		companion: comp,
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	api.Get("/journal", h.listJournal)
	api.Post("/journal", h.upsertJournal)
	api.Get("/journal/:id", h.getJournal)

	api.Get("/mood", h.listMood)
	api.Post("/mood", h.upsertMood)
	api.Get("/mood/:id", h.getMood)

	api.Get("/dashboard", h.dashboard)
	api.Get("/trends/mood", h.moodTrend)
	api.Get("/trends/sleep", h.sleepTrend)
	api.Get("/trends/study", h.studyTrend)

	api.Post("/chat", h.chat)
	api.Post("/reflect", h.reflect)
}

func (h *Handler) listJournal(c *fiber.Ctx) error {
	entries := h.entries.ListJournal(c.UserContext())
	return c.JSON(fiber.Map{"entries": entries, "total": len(entries)})
}

func (h *Handler) upsertJournal(c *fiber.Ctx) error {
	var entry entity.JournalEntry
	if err := c.BodyParser(&entry); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid journal entry payload")
	}

	saved, err := h.entries.UpsertJournal(c.UserContext(), entry)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(saved)
}

func (h *Handler) getJournal(c *fiber.Ctx) error {
	entry, err := h.entries.GetJournal(c.UserContext(), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return c.JSON(entry)
}

func (h *Handler) listMood(c *fiber.Ctx) error {
	entries := h.entries.ListMood(c.UserContext())
	return c.JSON(fiber.Map{"entries": entries, "total": len(entries)})
}

func (h *Handler) upsertMood(c *fiber.Ctx) error {
	var entry entity.MoodEntry
	if err := c.BodyParser(&entry); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid mood entry payload")
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	saved, err := h.entries.UpsertMood(c.UserContext(), entry)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(saved)
}

func (h *Handler) getMood(c *fiber.Ctx) error {
	entry, err := h.entries.GetMood(c.UserContext(), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return c.JSON(entry)
}

func (h *Handler) dashboard(c *fiber.Ctx) error {
	summary := h.analytics.Dashboard(time.Now().UTC())

	// Alerts were evaluated on the unrounded aggregates inside the service;
	// rounding here is display-only.
	agg := summary.Aggregates
	agg.Mood = svc.Round1(agg.Mood)
	agg.Anxiety = svc.Round1(agg.Anxiety)
	agg.Energy = svc.Round1(agg.Energy)
	agg.Stress = svc.Round1(agg.Stress)
	agg.SleepHours = svc.Round1(agg.SleepHours)
	agg.SleepQuality = svc.Round1(agg.SleepQuality)
	agg.StudyHours = svc.Round1(agg.StudyHours)
	agg.Adherence = svc.Round1(agg.Adherence)

	return c.JSON(service.DashboardSummary{
		Aggregates: agg,
		Alerts:     summary.Alerts,
	})
}

func (h *Handler) trendDays(c *fiber.Ctx) int {
	days := c.QueryInt("days", svc.DefaultWindowDays)
	if days < 1 {
		days = svc.DefaultWindowDays
	}
	if days > maxTrendDays {
		days = maxTrendDays
	}
	return days
}

func roundTrend(points []service.TrendPoint) []service.TrendPoint {
	for _, p := range points {
		for k, v := range p.Values {
			p.Values[k] = svc.Round1(v)
		}
	}
	return points
}

func (h *Handler) moodTrend(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"points": roundTrend(h.analytics.MoodTrend(h.trendDays(c)))})
}

func (h *Handler) sleepTrend(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"points": roundTrend(h.analytics.SleepTrend(h.trendDays(c)))})
}

func (h *Handler) studyTrend(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"points": roundTrend(h.analytics.StudyTrend(h.trendDays(c)))})
}

type chatRequest struct {
	Message string           `json:"message"`
	History []companion.Turn `json:"history"`
}

type chatResponse struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
	Notice   string `json:"notice,omitempty"`
}

func (h *Handler) chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid chat payload")
	}
	if req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	if h.companion == nil {
		return c.JSON(chatResponse{
			Reply:    companion.FallbackReply,
			Fallback: true,
			Notice:   "companion is disabled",
		})
	}

	reply, err := h.companion.SendTurn(c.UserContext(), req.Message, req.History)
	if err != nil {
		// Companion failures are non-fatal: substitute the canned reply and
		// surface a notice rather than an error status.
		log.Printf("Companion chat failed: %v", err)
		return c.JSON(chatResponse{
			Reply:    companion.FallbackReply,
			Fallback: true,
			Notice:   "companion temporarily unavailable",
		})
	}

	return c.JSON(chatResponse{Reply: reply})
}

type reflectRequest struct {
	EntryID string `json:"entry_id"`
}

func (h *Handler) reflect(c *fiber.Ctx) error {
	var req reflectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid reflect payload")
	}
	if req.EntryID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "entry_id is required")
	}

	entry, err := h.entries.GetJournal(c.UserContext(), req.EntryID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if h.companion == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "reflection unavailable: companion is disabled")
	}

	reflection, err := h.companion.Reflect(c.UserContext(), entry)
	if err != nil {
		log.Printf("Companion reflection failed: %v", err)
		return fiber.NewError(fiber.StatusServiceUnavailable, "reflection unavailable, please try again later")
	}

	return c.JSON(fiber.Map{"reflection": reflection})
}
