package http

import (
	"bytes"
	"html/template"

	"github.com/farbarter/goapi/stores/listing/presenter"
)

type page struct {
	ListingId string
	Meta      presenter.PageMetadata
	State     presenter.ViewState
	Stats     presenter.Stats
	Action    presenter.ActionState
}

var pageTmpl = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
{{- with .Meta.OpenGraph}}
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
{{- range .Images}}
<meta property="og:image" content="{{.}}">
{{- end}}
{{- end}}
</head>
<body>
<main>
{{- if eq .State.Status "loaded"}}
{{- with .State.Listing}}
<h1 id="listing-header">Listing #{{$.ListingId}}</h1>
{{- if .Metadata.ImageUrl}}
<img id="listing-image" src="{{.Metadata.ImageUrl}}" alt="{{.Metadata.Name}}">
{{- end}}
<h2 id="listing-name">{{.Metadata.Name}}</h2>
<p id="listing-description">{{.Metadata.Description}}</p>
{{- end}}
<dl id="listing-stats">
<dt>Price</dt><dd id="stat-price">{{.Stats.Price}}</dd>
<dt>Available</dt><dd id="stat-available">{{.Stats.Available}}</dd>
<dt>Location</dt><dd id="stat-location">{{.Stats.Location}}</dd>
<dt>Seller FID</dt><dd id="stat-seller">{{.Stats.SellerFid}}</dd>
</dl>
<p id="payment-note">{{.Stats.PaymentNote}}</p>
<form method="post" action="/api/listings/{{.ListingId}}/purchase">
<button id="purchase" type="submit"{{if not .Action.Enabled}} disabled{{end}}>{{.Action.Label}}</button>
</form>
{{- else if eq .State.Status "error"}}
<p id="listing-error">{{.State.Message}}</p>
{{- else}}
<p id="listing-loading">Loading...</p>
{{- end}}
</main>
</body>
</html>
`))

func renderPage(p *page) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := pageTmpl.Execute(buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
