package client

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/KirkDiggler/special-api/internal/errors"
	"github.com/KirkDiggler/special-api/internal/orchestrators/actor"
)

// rpcError decodes a status error and lists any field violations it carries
func rpcError(err error) error {
	converted := errors.FromGRPCError(err)
	fields, _ := errors.GetMeta(converted)[errors.MetaValidationErrors].(map[string][]string)
	if len(fields) == 0 {
		return converted
	}

	var lines []string
	for _, name := range sortedKeys(fields) {
		for _, msg := range fields[name] {
			lines = append(lines, "  "+name+": "+msg)
		}
	}
	return fmt.Errorf("%w\n%s", converted, strings.Join(lines, "\n"))
}

// printJSON writes v indented
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printView writes a readable summary of a prepared actor
func printView(w io.Writer, view *actor.ActorView) {
	if view == nil {
		return
	}
	if view.Actor != nil {
		fmt.Fprintf(w, "Actor: %s (%s)\n", view.Actor.Name, view.Actor.ID)
	}
	d := view.Derived
	fmt.Fprintf(w, "Level: %v\n", d.Level)
	fmt.Fprintf(w, "%s: %v/%v\n", d.HitPoints.Label, d.HitPoints.Value, d.HitPoints.Max)
	fmt.Fprintf(w, "%s: %v/%v\n", d.ActionPoints.Label, d.ActionPoints.Value, d.ActionPoints.Max)
	fmt.Fprintf(w, "Radiation: %s\n", d.RadiationSickness)

	fmt.Fprintf(w, "\nSPECIAL:\n")
	for _, name := range sortedKeys(d.Specials) {
		sp := d.Specials[name]
		fmt.Fprintf(w, "  - %s: %d (perm %v, temp %v)\n", sp.Label, sp.Points, sp.PermTotal, sp.TempTotal)
		printComponents(w, sp.PermComponents)
		printComponents(w, sp.TempComponents)
	}

	fmt.Fprintf(w, "\nSkills:\n")
	for _, name := range sortedKeys(d.Skills) {
		printNumber(w, d.Skills[name])
	}

	fmt.Fprintf(w, "\n")
	printNumber(w, d.CriticalSuccess)
	printNumber(w, d.CriticalFailure)
	printNumber(w, d.CarryWeight)

	if len(view.RuleElements) == 0 {
		return
	}
	fmt.Fprintf(w, "\nRule Elements:\n")
	for _, re := range view.RuleElements {
		fmt.Fprintf(w, "  - %s[%d] valid=%v active=%v %s\n", re.ItemID, re.Index, re.Valid, re.Active, re.Source)
		for _, m := range re.Messages {
			fmt.Fprintf(w, "      %s: %s\n", m.Severity, m.Text)
		}
	}
}

func printNumber(w io.Writer, n actor.NumberView) {
	fmt.Fprintf(w, "  - %s: %v\n", n.Label, n.Total)
	printComponents(w, n.Components)
}

func printComponents(w io.Writer, components []actor.ComponentView) {
	for _, c := range components {
		fmt.Fprintf(w, "      %+v %s\n", c.Value, c.Label)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
