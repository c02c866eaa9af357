package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/habitcraft/internal/constants"
)

// Context is passed to every command's Run method
type Context struct {
	Out       io.Writer
	In        io.Reader
	Now       func() time.Time
	Version   string
	ConfigDir string
}

// NewContext returns a Context bound to the process's stdin and stdout
func NewContext(configDir string) *Context {
	return &Context{
		Out:       os.Stdout,
		In:        os.Stdin,
		Now:       time.Now,
		Version:   constants.Version,
		ConfigDir: configDir,
	}
}

func (c *Context) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(c.Out, string(data))
	return err
}
