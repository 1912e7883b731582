package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/wallet_history_app/internal/core/ports/services"
	"github.com/SscSPs/wallet_history_app/internal/dto"
	"github.com/SscSPs/wallet_history_app/internal/middleware"
)

// walletHistoryHandler handles HTTP requests for a wallet's transaction history.
type walletHistoryHandler struct {
	historyService portssvc.WalletHistorySvcFacade
}

type walletURI struct {
	WalletID string `uri:"walletID" binding:"required"`
}

type walletTxHashURI struct {
	WalletID string `uri:"walletID" binding:"required"`
	TxHash   string `uri:"txHash" binding:"required,txhash"`
}

// RegisterWalletHistoryRoutes registers the history routes under rg.
func RegisterWalletHistoryRoutes(rg *gin.RouterGroup, historyService portssvc.WalletHistorySvcFacade) {
	RegisterValidators()
	h := &walletHistoryHandler{historyService: historyService}

	wallets := rg.Group("/wallets/:walletID/transactions")
	{
		wallets.GET("", h.listTransactions)
		wallets.GET("/pending", h.listPendingTransactions)
		wallets.GET("/hash/:txHash", h.getTransactionsByHash)
	}
}

// listTransactions godoc
// @Summary List a wallet's transactions
// @Description Returns a page of the wallet's history, newest first. Unconfirmed incoming on-chain payments are listed first on the first page.
// @Tags wallet-history
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Param   limit query int false "Page size (1-200)"
// @Param   nextToken query string false "Cursor returned by the previous page"
// @Success 200 {object} dto.ListWalletTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Wallet belongs to another user"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 500 {object} map[string]string "A transaction could not be displayed"
// @Security BearerAuth
// @Router /wallets/{walletID}/transactions [get]
func (h *walletHistoryHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var uri walletURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wallet ID: " + err.Error()})
		return
	}

	var params dto.ListWalletTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListWalletTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.historyService.ListWalletTransactions(c.Request.Context(), uri.WalletID, userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListWalletTransactionsResponse{
		Transactions: dto.ToWalletTransactionResponses(page.Transactions),
		NextToken:    page.NextToken,
	})
}

// listPendingTransactions godoc
// @Summary List a wallet's pending transactions
// @Description Returns unconfirmed ledger entries and unconfirmed incoming on-chain payments.
// @Tags wallet-history
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Success 200 {array} dto.WalletTransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Wallet belongs to another user"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 500 {object} map[string]string "A transaction could not be displayed"
// @Security BearerAuth
// @Router /wallets/{walletID}/transactions/pending [get]
func (h *walletHistoryHandler) listPendingTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var uri walletURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wallet ID: " + err.Error()})
		return
	}

	txs, err := h.historyService.ListPendingTransactions(c.Request.Context(), uri.WalletID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list pending transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletTransactionResponses(txs))
}

// getTransactionsByHash godoc
// @Summary Get a wallet's entries for an on-chain transaction
// @Tags wallet-history
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Param   txHash path string true "Transaction hash (64 hex characters)"
// @Success 200 {array} dto.WalletTransactionResponse
// @Failure 400 {object} map[string]string "Invalid transaction hash"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Wallet belongs to another user"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 500 {object} map[string]string "A transaction could not be displayed"
// @Security BearerAuth
// @Router /wallets/{walletID}/transactions/hash/{txHash} [get]
func (h *walletHistoryHandler) getTransactionsByHash(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var uri walletTxHashURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction hash"})
		return
	}

	txs, err := h.historyService.GetTransactionsByHash(c.Request.Context(), uri.WalletID, userID, uri.TxHash)
	if err != nil {
		respondError(c, logger, err, "Failed to get transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletTransactionResponses(txs))
}
