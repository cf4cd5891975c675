package commands

import (
	"github.com/Strum355/log"
)

type commandError struct {
	err     error
	message string
}

// Handle logs the underlying error and tells the operator what went wrong.
func (e *commandError) Handle(c *Console) {
	log.WithError(e.err).Error(e.message)
	c.Printf("%s\n", e.message)
}
