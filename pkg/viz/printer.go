package viz

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/asciiviz/pkg/errors"
)

// Printer writes visualizations to a sink and reports failures to a logger
// instead of returning them.
type Printer struct {
	Out    io.Writer   // defaults to os.Stdout
	Logger *log.Logger // defaults to log.Default()
}

// NewPrinter creates a Printer writing to out and logging to logger.
func NewPrinter(out io.Writer, logger *log.Logger) *Printer {
	return &Printer{Out: out, Logger: logger}
}

// Visualize renders data and writes it followed by a newline.
//
// An unknown type is logged as "Unknown visualization type" and nothing is
// written. Data of the wrong shape is logged the same way.
func (p *Printer) Visualize(t Type, data any, opts Options) {
	text, err := Render(t, data, opts)
	if err != nil {
		if errors.Is(err, errors.ErrCodeUnknownType) {
			p.logger().Error("Unknown visualization type", "type", string(t))
		} else {
			p.logger().Error("Visualization failed", "type", string(t), "err", errors.UserMessage(err))
		}
		return
	}
	fmt.Fprintln(p.out(), text)
}

func (p *Printer) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p *Printer) logger() *log.Logger {
	if p.Logger == nil {
		return log.Default()
	}
	return p.Logger
}
