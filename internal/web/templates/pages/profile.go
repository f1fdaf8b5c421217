package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/chayapatp/topupstore/internal/model"
	"github.com/chayapatp/topupstore/internal/web/templates/layout"
)

// ProfileData is the profile page data
type ProfileData struct {
	layout.PageData
	Profile model.Account
}

// Profile renders the signed-in member's profile
func Profile(data ProfileData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="profile-box">
<img class="avatar" src="%s" alt="%s">
<h1>%s</h1>
<dl>
<dt>อีเมล</dt><dd>%s</dd>
<dt>บทบาท</dt><dd>%s</dd>
</dl>
<a href="/" class="btn-outline">กลับไปหน้ารายการ</a>
</div>
`,
			templ.EscapeString(data.Profile.Image),
			templ.EscapeString(data.Profile.FullName),
			templ.EscapeString(data.Profile.FullName),
			templ.EscapeString(data.Profile.Email),
			templ.EscapeString(data.Profile.Role),
		)
		return err
	})
	return layout.Base(data.PageData, body)
}
