package handler

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/valyala/fasthttp"

	"water-advisor/internal/model"
)

type page struct {
	FamilySize          int
	ShowerMinutes       string
	LaundryLoadsPerWeek string
	ROPurifier          string
	Report              string
}

func defaultPage() page {
	return page{
		FamilySize:          1,
		ShowerMinutes:       "10",
		LaundryLoadsPerWeek: "5",
		ROPurifier:          model.ROPurifierYes,
	}
}

func pageFromRequest(req *model.AuditRequest, report string) page {
	return page{
		FamilySize:          req.FamilySize,
		ShowerMinutes:       strconv.FormatFloat(req.ShowerMinutes, 'f', -1, 64),
		LaundryLoadsPerWeek: strconv.FormatFloat(req.LaundryLoadsPerWeek, 'f', -1, 64),
		ROPurifier:          req.ROPurifier,
		Report:              report,
	}
}

// parseForm reads the four form fields. Range limits are left to the
// browser widgets; only unparseable or non-finite numbers are rejected here.
func parseForm(ctx *fasthttp.RequestCtx) (*model.AuditRequest, error) {
	familySize, err := strconv.Atoi(string(ctx.FormValue("family_size")))
	if err != nil {
		return nil, fmt.Errorf("family_size: %w", err)
	}

	shower, err := model.ParseFinite(string(ctx.FormValue("shower_minutes")))
	if err != nil {
		return nil, fmt.Errorf("shower_minutes: %w", err)
	}

	laundry, err := model.ParseFinite(string(ctx.FormValue("laundry_loads_per_week")))
	if err != nil {
		return nil, fmt.Errorf("laundry_loads_per_week: %w", err)
	}

	return &model.AuditRequest{
		FamilySize:          familySize,
		ShowerMinutes:       shower,
		LaundryLoadsPerWeek: laundry,
		ROPurifier:          string(ctx.FormValue("ro_purifier")),
	}, nil
}

func (h *Handler) renderPage(ctx *fasthttp.RequestCtx, status int, p page) {
	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetStatusCode(status)
	if err := pageTemplate.Execute(ctx, p); err != nil {
		h.logger.Error().Err(err).Msg("render page")
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Smart Water Usage Advisor</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
label { display: block; margin-top: 1rem; }
textarea { width: 100%; font-family: monospace; }
</style>
</head>
<body>
<h1>💧 Smart Water Usage Advisor</h1>
<p>Enter your daily habits to see your Water Footprint.</p>
<form method="post" action="/">
  <label>Family Size (People)
    <input type="range" name="family_size" min="1" max="15" step="1" value="{{.FamilySize}}" oninput="this.nextElementSibling.value=this.value">
    <output>{{.FamilySize}}</output>
  </label>
  <label>Avg Shower Time (Mins)
    <input type="range" name="shower_minutes" min="1" max="60" step="1" value="{{.ShowerMinutes}}" oninput="this.nextElementSibling.value=this.value">
    <output>{{.ShowerMinutes}}</output>
  </label>
  <label>Laundry Loads per Week
    <input type="number" name="laundry_loads_per_week" step="any" value="{{.LaundryLoadsPerWeek}}">
  </label>
  <fieldset>
    <legend>Do you use an RO Purifier?</legend>
    <label><input type="radio" name="ro_purifier" value="Yes"{{if eq .ROPurifier "Yes"}} checked{{end}}> Yes</label>
    <label><input type="radio" name="ro_purifier" value="No"{{if ne .ROPurifier "Yes"}} checked{{end}}> No</label>
  </fieldset>
  <p><button type="submit">Submit</button></p>
</form>
<label>Analysis Report
  <textarea rows="25" readonly>{{.Report}}</textarea>
</label>
</body>
</html>
`))
