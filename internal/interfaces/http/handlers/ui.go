// internal/interfaces/http/handlers/ui.go
package handlers

import (
	"net/http"

	"github.com/Zevk4/levelup-store/internal/domain/cart"
	"github.com/Zevk4/levelup-store/internal/domain/ui"
	"github.com/gin-gonic/gin"
)

// UIHandler exposes the shared overlay flags so unrelated views can
// observe and toggle them.
type UIHandler struct {
	modals *ui.ModalStore
	cart   *cart.Store
}

// NewUIHandler creates a new UI coordination handler
func NewUIHandler(modals *ui.ModalStore, cartStore *cart.Store) *UIHandler {
	return &UIHandler{
		modals: modals,
		cart:   cartStore,
	}
}

// GetState reports the current overlay visibility flags
func (h *UIHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"login_modal_open": h.modals.LoginOpen(),
			"cart_open":        h.cart.IsOpen(),
		},
	})
}

// OpenLoginModal shows the login overlay
func (h *UIHandler) OpenLoginModal(c *gin.Context) {
	h.modals.OpenLogin()

	c.JSON(http.StatusOK, gin.H{"login_modal_open": true})
}

// CloseLoginModal hides the login overlay
func (h *UIHandler) CloseLoginModal(c *gin.Context) {
	h.modals.CloseLogin()

	c.JSON(http.StatusOK, gin.H{"login_modal_open": false})
}
