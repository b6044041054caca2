package commands

import (
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// validateRequestContext rejects contexts without an actor; every command that
// changes an aggregate must say who did it.
func validateRequestContext(requestCtx kernel.DomainContext) error {
	if strings.TrimSpace(requestCtx.Actor()) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	return nil
}
