package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"phonefield/internal/directory"
	apperrors "phonefield/internal/errors"
	"phonefield/internal/format"
	"phonefield/pkg/types"
)

func fmtCmd() *cobra.Command {
	var countryFlag string

	cmd := &cobra.Command{
		Use:   "fmt <number>",
		Short: "Print the national and canonical renderings of a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iso2, country, err := resolveCountry(countryFlag)
			if err != nil {
				return err
			}

			raw := args[0]
			national := format.AsTyped(iso2, raw)
			canonical := format.Canonical(format.CleanForEmit(raw), country)

			region := iso2
			if strings.HasPrefix(strings.TrimSpace(raw), "+") {
				if r := format.Region(raw); r != "" {
					region = r
					national = format.AsTyped(r, raw)
				}
			}

			fmt.Printf("country:   %s\n", region)
			fmt.Printf("national:  %s\n", national)
			fmt.Printf("canonical: %s\n", canonical)
			return nil
		},
	}

	cmd.Flags().StringVarP(&countryFlag, "country", "c", "", "ISO2 country to format under (default from config)")
	return cmd
}

func checkCmd() *cobra.Command {
	var countryFlag string

	cmd := &cobra.Command{
		Use:   "check <number>",
		Short: "Check whether a number is complete and valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iso2, _, err := resolveCountry(countryFlag)
			if err != nil {
				return err
			}
			if !format.Valid(args[0], iso2) {
				return apperrors.NewInputError("invalid phone number", args[0], apperrors.InvalidInput, nil)
			}
			fmt.Println("valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&countryFlag, "country", "c", "", "ISO2 country to validate under (default from config)")
	return cmd
}

func countriesCmd() *cobra.Command {
	var allowed, excluded, preferred []string

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Print the candidate country list for the configured filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := cfg.Filter()
			if len(allowed) > 0 {
				filter.Allowed = allowed
			}
			if len(excluded) > 0 {
				filter.Excluded = excluded
			}
			if len(preferred) > 0 {
				filter.Preferred = preferred
			}

			for _, c := range directory.Candidates(filter) {
				fmt.Printf("%s  %-2s  +%-4s %s\n", c.Flag, c.ISO2, c.CallingCode, c.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&allowed, "allowed", nil, "ISO2 codes (or globs) to keep")
	cmd.Flags().StringSliceVar(&excluded, "excluded", nil, "ISO2 codes (or globs) to drop")
	cmd.Flags().StringSliceVar(&preferred, "preferred", nil, "ISO2 codes to pin to the front, in order")
	return cmd
}

// resolveCountry turns a --country flag (or the config default) into a
// directory entry.
func resolveCountry(flag string) (string, types.Country, error) {
	iso2 := flag
	if iso2 == "" {
		iso2 = cfg.DefaultCountry
	}
	c, ok := directory.Get(iso2)
	if !ok {
		return "", c, apperrors.NewInputError("unknown country code", iso2, apperrors.UnknownCountry, nil)
	}
	return c.ISO2, c, nil
}
