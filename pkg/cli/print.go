package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getmockd/fakeapi/pkg/cli/internal/output"
	"github.com/getmockd/fakeapi/pkg/records"
)

// emit writes v as JSON with --json, otherwise calls text.
func (a *app) emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.flags.jsonOutput {
		return output.JSON(w, v)
	}
	text(w)
	return nil
}

// done reports a successful mutation.
func (a *app) done(cmd *cobra.Command, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return a.emit(cmd, map[string]string{"status": "ok", "message": msg}, func(w io.Writer) {
		fmt.Fprintln(w, msg)
	})
}

func printUsers(w io.Writer, users []records.PublicUser) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users")
		return
	}
	tw := output.Table(w)
	fmt.Fprintln(tw, "ID\tUSERNAME\tFIRST NAME\tLAST NAME")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.FirstName, u.LastName)
	}
	_ = tw.Flush()
}

func printItems(w io.Writer, items []records.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items")
		return
	}
	tw := output.Table(w)
	fmt.Fprintln(tw, "ID\tFIELDS")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\n", it.ID, formatFields(it.Fields))
	}
	_ = tw.Flush()
}

// formatFields renders fields as sorted key=value pairs.
func formatFields(fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + formatValue(fields[k])
	}
	return strings.Join(parts, " ")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " \t") {
			return strconv.Quote(val)
		}
		return val
	case nil:
		return "null"
	default:
		return fmt.Sprint(val)
	}
}
