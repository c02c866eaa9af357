package cli

import (
	"fmt"

	"github.com/julianstephens/habitcraft/internal/schema"
)

type KindsCmd struct{}

func (c *KindsCmd) Run(ctx *Context) error {
	for _, k := range schema.Kinds() {
		fmt.Fprintf(ctx.Out, "%s%s\n", kindNameStyle.Render(k.Name), k.Description)
	}
	return nil
}
