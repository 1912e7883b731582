package handlers

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding tags used by request DTOs to
// gin's validator. It is safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("txhash", validateTxHash)
		}
	})
}

// validateTxHash accepts a 64 character hex transaction id.
func validateTxHash(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != chainhash.MaxHashStringSize {
		return false
	}
	_, err := chainhash.NewHashFromStr(s)
	return err == nil
}
