package cli

import (
	"github.com/julianstephens/habitcraft/internal/constants"
	"github.com/julianstephens/habitcraft/internal/models"
)

type HealthCmd struct{}

func (c *HealthCmd) Run(ctx *Context) error {
	return ctx.printJSON(models.HealthResponse{
		Status:    constants.HealthStatusOK,
		Timestamp: ctx.Now().UTC(),
		Version:   ctx.Version,
	})
}
