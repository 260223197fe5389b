package cli

import (
	"fmt"
	"io"
	"math"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"water-advisor/internal/engine"
	"water-advisor/internal/model"
)

type auditFlags struct {
	familySize    int
	showerMinutes float64
	laundryLoads  float64
	ro            string
	output        string
}

func newAuditCmd(a *app) *cobra.Command {
	var flags auditFlags

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Print a water audit report for one household",
		Example: `  water-advisor audit --family-size 4 --shower-minutes 10 --laundry-loads 5 --ro Yes
  water-advisor audit --family-size 2 --shower-minutes 5 --laundry-loads 1 --ro No --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			req := &model.AuditRequest{
				FamilySize:          flags.familySize,
				ShowerMinutes:       flags.showerMinutes,
				LaundryLoadsPerWeek: flags.laundryLoads,
				ROPurifier:          flags.ro,
			}
			resp := engine.Process(req)
			a.logger.Debug().
				Str("audit_id", resp.AuditMetadata.AuditID).
				Str("outcome", resp.AuditMetadata.AuditOutcome).
				Msg("audit completed")

			return writeAudit(cmd.OutOrStdout(), flags.output, resp)
		},
	}

	cmd.Flags().IntVar(&flags.familySize, "family-size", 1, "number of people in the household")
	cmd.Flags().Float64Var(&flags.showerMinutes, "shower-minutes", 10, "average shower time in minutes")
	cmd.Flags().Float64Var(&flags.laundryLoads, "laundry-loads", 5, "laundry loads per week")
	cmd.Flags().StringVar(&flags.ro, "ro", model.ROPurifierYes, "RO purifier in use (Yes or No)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "text", "output format: text, json or yaml")

	return cmd
}

func (f *auditFlags) validate() error {
	for name, v := range map[string]float64{
		"shower-minutes": f.showerMinutes,
		"laundry-loads":  f.laundryLoads,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("--%s: %w", name, model.ErrNotFinite)
		}
	}
	return nil
}

func writeAudit(w io.Writer, format string, resp *model.AuditResponse) error {
	switch format {
	case "text":
		_, err := io.WriteString(w, resp.AuditResult.Report)
		return err
	case "json":
		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling audit: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("marshaling audit: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
