package onboarding

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/whatsclone/whatsclone/internal/mask"
	"github.com/whatsclone/whatsclone/internal/permission"
)

// DialogSource is the permission gate as seen by the login screen.
type DialogSource interface {
	PendingDialog() (permission.Dialog, bool)
	Acknowledge() bool
}

// Handler exposes the login and validator screens.
type Handler struct {
	flow    *Flow
	dialogs DialogSource
}

// NewHandler constructs an onboarding HTTP handler. dialogs may be nil.
func NewHandler(flow *Flow, dialogs DialogSource) *Handler {
	return &Handler{flow: flow, dialogs: dialogs}
}

var (
	nameMask    = mask.New(mask.DisplayName)
	countryMask = mask.New(mask.CountryCode)
	areaMask    = mask.New(mask.AreaCode)
	localMask   = mask.New(mask.LocalNumber)
	tokenMask   = mask.New(mask.Token)
)

type registerRequest struct {
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	AreaCode    string `json:"area_code"`
	Phone       string `json:"phone"`
}

// Register submits the login form. Raw fields go through the same masks the
// screen's text inputs apply.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	out, err := h.flow.Register(c.UserContext(), Registration{
		DisplayName: nameMask.Format(req.Name),
		CountryCode: countryMask.Format(req.CountryCode),
		AreaCode:    areaMask.Format(req.AreaCode),
		LocalNumber: localMask.Format(req.Phone),
	})
	if errors.Is(err, ErrScreenFinished) {
		return fiber.NewError(http.StatusConflict, "login screen finished")
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(out)
}

// PendingNotice returns the permission dialog waiting on the login screen.
func (h *Handler) PendingNotice(c *fiber.Ctx) error {
	if h.dialogs == nil {
		return c.SendStatus(http.StatusNoContent)
	}
	d, ok := h.dialogs.PendingDialog()
	if !ok {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.Status(http.StatusOK).JSON(Notice{Kind: NoticeDialog, Title: d.Title, Text: d.Message, Button: d.Button})
}

// AcknowledgeNotice confirms the permission dialog, which finishes the login screen.
func (h *Handler) AcknowledgeNotice(c *fiber.Ctx) error {
	if h.dialogs == nil || !h.dialogs.Acknowledge() {
		return fiber.NewError(http.StatusNotFound, "no pending notice")
	}
	return c.Status(http.StatusOK).JSON(h.flow.Navigator().Snapshot())
}

type verifyRequest struct {
	Code string `json:"code"`
}

// Verify submits the validator form.
func (h *Handler) Verify(c *fiber.Ctx) error {
	if h.flow.Navigator().Current() != ScreenValidator {
		return fiber.NewError(http.StatusConflict, ErrWrongScreen.Error())
	}
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	verdict, err := h.flow.Verify(c.UserContext(), tokenMask.Format(req.Code))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(verdict)
}

// Screen reports the navigator state.
func (h *Handler) Screen(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.flow.Navigator().Snapshot())
}
