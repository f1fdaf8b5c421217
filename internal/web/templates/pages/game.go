package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/web/templates/layout"
)

// GameDetailData is the game detail page data
type GameDetailData struct {
	layout.PageData
	Game model.Game
}

// GameDetail renders one game with its top-up form
func GameDetail(data GameDetailData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		g := data.Game
		_, err := fmt.Fprintf(w, `<div class="game-detail">
<a href="/" class="btn-outline">กลับไปหน้ารายการ</a>
<div class="game-detail-main">
<img src="%s" alt="%s">
<div class="game-detail-info">
<h1>%s</h1>
<p class="description">%s</p>
<h2>ข้อมูลเบื้องต้น</h2>
<p>ชื่อ: %s<br>รายละเอียด: %s</p>
<a href="%s" target="_blank" class="btn-download">ดาวน์โหลด</a>
</div>
</div>
<div class="topup-box">
<h2>เติมเงิน</h2>
<form action="/games/%d/topup" method="post">
<label for="user_id">ไอดีผู้ใช้ในเกม</label>
<input type="text" id="user_id" name="user_id">
<label for="amount">จำนวนเงิน (บาท)</label>
<input type="number" id="amount" name="amount" min="1">
<button type="submit" class="btn-primary">เติมเงิน</button>
</form>
</div>
</div>
`,
			templ.EscapeString(g.Image),
			templ.EscapeString(g.Name),
			templ.EscapeString(g.Name),
			templ.EscapeString(g.Description),
			templ.EscapeString(g.Name),
			templ.EscapeString(g.Description),
			templ.EscapeString(g.Link),
			g.ID,
		)
		return err
	})
	return layout.Base(data.PageData, body)
}
