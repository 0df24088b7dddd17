package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/andreiashu/countries"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCountry(w io.Writer, format string, c countries.Country) error {
	if format == "json" {
		return writeJSON(w, c.Flat())
	}
	currency := "-"
	if cur, err := c.Currency(); err == nil {
		currency = fmt.Sprintf("%s (%s)", cur.Code(), cur.Symbol())
	}
	_, err := fmt.Fprintf(w, "%s  %s  %s  %s\n  official: %s\n  capital:  %s\n  currency: %s\n  calling:  %s\n",
		c.Flag(), c.Alpha2Code(), c.Alpha3Code(), c.CommonName(),
		c.OfficialName(),
		strings.Join(c.Capital(), ", "),
		currency,
		strings.Join(c.CallingCodes(), ", "))
	return err
}

func writeCountries(w io.Writer, format string, cs *countries.Countries) error {
	if format == "json" {
		flat := make([]countries.FlatCountry, 0, cs.Len())
		for _, c := range cs.All() {
			flat = append(flat, c.Flat())
		}
		return writeJSON(w, flat)
	}
	for code, c := range cs.All() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", code, c.CommonName()); err != nil {
			return err
		}
	}
	return nil
}

func writeList(w io.Writer, format string, list *countries.OrderedMap[string]) error {
	if format == "json" {
		return writeJSON(w, list)
	}
	for k, v := range list.All() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", k, v); err != nil {
			return err
		}
	}
	return nil
}
