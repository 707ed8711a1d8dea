// Package logging provides apex/log handlers for the command line tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
)

var (
	bold = color.New(color.Bold)
	grey = color.New(color.FgHiBlack)
)

var levelNames = [...]string{
	log.DebugLevel: "DEBUG",
	log.InfoLevel:  "INFO",
	log.WarnLevel:  "WARNING",
	log.ErrorLevel: "ERROR",
	log.FatalLevel: "FATAL",
}

var levelColors = [...]*color.Color{
	log.DebugLevel: color.New(color.FgWhite),
	log.InfoLevel:  color.New(color.FgBlue),
	log.WarnLevel:  color.New(color.FgYellow),
	log.ErrorLevel: color.New(color.FgRed),
	log.FatalLevel: color.New(color.FgRed),
}

// Handler writes one line per entry: timestamp, level, the "name" field,
// the message and the remaining fields sorted by key.
type Handler struct {
	mu     sync.Mutex
	Writer io.Writer
	now    func() time.Time
}

// NewHandler returns a Handler writing to w. Terminals get colored output.
func NewHandler(w io.Writer) *Handler {
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
	}
	return &Handler{Writer: w, now: time.Now}
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	c := levelColors[e.Level]
	level := levelNames[e.Level]

	name, _ := e.Fields.Get("name").(string)
	var extra []string
	for k, v := range e.Fields {
		if k == "name" {
			continue
		}
		extra = append(extra, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(extra)

	h.mu.Lock()
	defer h.mu.Unlock()

	grey.Fprintf(h.Writer, "[%s] ", h.now().Format("2006-01-02 15:04:05"))
	c.Fprint(h.Writer, bold.Sprintf("%s: ", level))
	if name != "" {
		fmt.Fprintf(h.Writer, "%s: ", name)
	}
	fmt.Fprint(h.Writer, e.Message)
	if len(extra) > 0 {
		fmt.Fprintf(h.Writer, " %s", strings.Join(extra, " "))
	}
	fmt.Fprintln(h.Writer)
	return nil
}

// MultiHandler fans every entry out to several handlers.
type MultiHandler struct {
	handlers []log.Handler
}

func NewMultiHandler(handlers ...log.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// HandleLog implements log.Handler. The first error is returned after every
// handler has run.
func (m *MultiHandler) HandleLog(e *log.Entry) error {
	var first error
	for _, h := range m.handlers {
		if err := h.HandleLog(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ParseLevel maps the command line level names onto apex/log levels.
func ParseLevel(s string) (log.Level, error) {
	s = strings.ToLower(s)
	if s == "warning" {
		return log.WarnLevel, nil
	}
	return log.ParseLevel(s)
}
