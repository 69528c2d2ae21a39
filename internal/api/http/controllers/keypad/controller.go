package keypad

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"megaCalc/internal/domain"
	"megaCalc/internal/ports"
)

// Controller — маршруты калькулятора: нажатие клавиши, дисплей, история.
type Controller struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/sessions/:id/keys", c.pressKey)
	api.GET("/sessions/:id/display", c.display)
	api.GET("/sessions/:id/history", c.history)
}

// @Summary Нажать клавишу
// @Description Применяет одно нажатие (0-9 + - * / = . n b c C) к сессии и возвращает дисплей. "Error" — обычное значение дисплея, не ошибка HTTP.
// @Tags keypad
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param request body PressKeyRequest true "Клавиша"
// @Success 200 {object} DisplayResponse "Дисплей после нажатия"
// @Failure 400 {object} DisplayResponse "Невалидный запрос или клавиша не из одного символа"
// @Failure 500 {object} DisplayResponse "Внутренняя ошибка сервера"
// @Router /api/v1/sessions/{id}/keys [post]
func (c *Controller) pressKey(ctx *gin.Context) {
	var req PressKeyRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("press key bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, DisplayResponse{Message: "invalid request: " + err.Error()})
		return
	}

	display, err := c.uc.PressKey(ctx.Request.Context(), ctx.Param("id"), req.Key)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidKey) {
			c.log.Warn("press key bad key", "error", err)
			ctx.JSON(http.StatusBadRequest, DisplayResponse{Message: err.Error()})
			return
		}
		c.log.Error("press key failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, DisplayResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, DisplayResponse{Display: display})
}

// @Summary Текущий дисплей
// @Description Возвращает строку дисплея сессии (из кэша, при промахе — с живого движка)
// @Tags keypad
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} DisplayResponse "Текущий дисплей"
// @Failure 500 {object} DisplayResponse "Внутренняя ошибка сервера"
// @Router /api/v1/sessions/{id}/display [get]
func (c *Controller) display(ctx *gin.Context) {
	display, err := c.uc.Display(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.log.Error("display failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, DisplayResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, DisplayResponse{Display: display})
}

// @Summary История вычислений сессии
// @Description Возвращает завершённые вычисления сессии из БД (последние сначала)
// @Tags keypad
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Success 200 {object} HistoryResponse "Список вычислений"
// @Failure 500 {object} DisplayResponse "Внутренняя ошибка сервера"
// @Router /api/v1/sessions/{id}/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, op := range list {
		items[i] = HistoryItem{
			ID:        op.ID,
			SessionID: op.SessionID,
			Operand0:  op.Operand0,
			Operand1:  op.Operand1,
			Operator:  op.Operator,
			Result:    op.Result,
			Timestamp: op.Timestamp,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}
