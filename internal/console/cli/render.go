package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
	"github.com/shopspring/decimal"
)

type renderer struct {
	w    io.Writer
	json bool
}

// JSON writes v as indented JSON.
func (r renderer) JSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Raw writes a server body as indented JSON, or as received when it is not
// valid JSON.
func (r renderer) Raw(body json.RawMessage) error {
	if len(body) == 0 {
		return nil
	}
	if !json.Valid(body) {
		_, err := fmt.Fprintln(r.w, string(body))
		return err
	}
	return r.JSON(body)
}

// Table writes aligned columns.
func (r renderer) Table(headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Fields writes key/value pairs, one per line.
func (r renderer) Fields(pairs ...[2]string) error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, p := range pairs {
		fmt.Fprintf(tw, "%s:\t%s\n", p[0], p[1])
	}
	return tw.Flush()
}

// Printf writes a plain line of text.
func (r renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func date(t consolesdk.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return t.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
