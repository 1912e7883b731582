package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/wallet_history_app/internal/core/ports/services"
	"github.com/SscSPs/wallet_history_app/internal/dto"
	"github.com/SscSPs/wallet_history_app/internal/middleware"
)

// mempoolHandler handles HTTP requests feeding the unconfirmed transaction set.
type mempoolHandler struct {
	mempoolService portssvc.MempoolSvcFacade
}

type txHashURI struct {
	TxHash string `uri:"txHash" binding:"required,txhash"`
}

// RegisterMempoolRoutes registers the mempool routes under rg. They feed a set
// shared by every wallet, so only operator tokens may reach them.
func RegisterMempoolRoutes(rg *gin.RouterGroup, mempoolService portssvc.MempoolSvcFacade) {
	RegisterValidators()
	h := &mempoolHandler{mempoolService: mempoolService}

	mempool := rg.Group("/mempool/transactions", middleware.RequireScope(middleware.ScopeMempoolOperator))
	{
		mempool.GET("", h.listTransactions)
		mempool.POST("", h.trackTransaction)
		mempool.DELETE("/:txHash", h.forgetTransaction)
	}
}

// trackTransaction godoc
// @Summary Track an unconfirmed transaction
// @Description Decodes a raw transaction and adds it to the unconfirmed set so incoming payments show as pending.
// @Tags mempool
// @Accept  json
// @Produce  json
// @Param   transaction body dto.TrackTransactionRequest true "Hex serialized transaction"
// @Success 201 {object} dto.SubmittedTransactionResponse
// @Failure 400 {object} map[string]string "Invalid transaction"
// @Failure 503 {object} map[string]string "Tracked set is full"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operator scope required"
// @Failure 500 {object} map[string]string "Failed to track transaction"
// @Security BearerAuth
// @Router /mempool/transactions [post]
func (h *mempoolHandler) trackTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TrackTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TrackTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tx, err := h.mempoolService.TrackRawTransaction(c.Request.Context(), req.RawTx)
	if err != nil {
		respondError(c, logger, err, "Failed to track transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubmittedTransactionResponse(tx))
}

// listTransactions godoc
// @Summary List unconfirmed transactions
// @Tags mempool
// @Produce  json
// @Success 200 {array} dto.SubmittedTransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operator scope required"
// @Security BearerAuth
// @Router /mempool/transactions [get]
func (h *mempoolHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txs, err := h.mempoolService.PendingTransactions(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list unconfirmed transactions")
		return
	}

	res := make([]dto.SubmittedTransactionResponse, len(txs))
	for i := range txs {
		res[i] = dto.ToSubmittedTransactionResponse(&txs[i])
	}
	c.JSON(http.StatusOK, res)
}

// forgetTransaction godoc
// @Summary Stop tracking a transaction
// @Description Removes a transaction from the unconfirmed set, typically once it has confirmed.
// @Tags mempool
// @Param   txHash path string true "Transaction hash (64 hex characters)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid transaction hash"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Operator scope required"
// @Failure 404 {object} map[string]string "Transaction not tracked"
// @Security BearerAuth
// @Router /mempool/transactions/{txHash} [delete]
func (h *mempoolHandler) forgetTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var uri txHashURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction hash"})
		return
	}

	if err := h.mempoolService.ForgetTransaction(c.Request.Context(), uri.TxHash); err != nil {
		respondError(c, logger, err, "Failed to forget transaction")
		return
	}

	c.Status(http.StatusNoContent)
}
