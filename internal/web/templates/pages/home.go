package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/web/templates/layout"
)

// LandingData is the logged-out home page data
type LandingData struct {
	layout.PageData
}

// Landing renders the logged-out home page
func Landing(data LandingData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="hero">
<h1>เติมเกมที่คุณรัก</h1>
<p>เข้าสู่ระบบเพื่อดูรายการเกมและเติมเงิน</p>
<a href="/login" class="btn-primary">เข้าสู่ระบบ</a>
</section>
`)
		return err
	})
	return layout.Base(data.PageData, body)
}

// CatalogData is the logged-in home page data
type CatalogData struct {
	layout.PageData
	Games []*model.Game
}

// Catalog renders the game grid for a logged-in member
func Catalog(data CatalogData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		greeting := "แนะนำ"
		if data.Account != nil {
			greeting = fmt.Sprintf("แนะนำ, คุณ%s", data.Account.FullName)
		}
		if _, err := fmt.Fprintf(w, `<h1 class="catalog-title">%s</h1>
<div class="game-grid">
`, templ.EscapeString(greeting)); err != nil {
			return err
		}

		for _, game := range data.Games {
			if _, err := fmt.Fprintf(w, `<a class="game-card" href="/games/%d">
<img src="%s" alt="%s">
<div class="game-card-body">
<h2>%s</h2>
<p>%s</p>
</div>
</a>
`,
				game.ID,
				templ.EscapeString(game.Image),
				templ.EscapeString(game.Name),
				templ.EscapeString(game.Name),
				templ.EscapeString(game.Description),
			); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>
`)
		return err
	})
	return layout.Base(data.PageData, body)
}
