package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/chayapatp/topupstore/internal/web/templates/layout"
)

// LoginData is the login page data
type LoginData struct {
	layout.PageData
	Email string // retained form value after a failed attempt
	Error string // empty when no error
}

// Login renders the credential form
func Login(data LoginData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="login-box">
<h1>เข้าสู่ระบบ</h1>
<form action="/login" method="post">
<label for="email">อีเมล</label>
<input type="email" id="email" name="email" value="%s" required>
<label for="password">รหัสผ่าน</label>
<input type="password" id="password" name="password" required>
`, templ.EscapeString(data.Email)); err != nil {
			return err
		}

		if data.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="login-error">%s</p>
`, templ.EscapeString(data.Error)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<button type="submit" class="btn-primary">เข้าสู่ระบบ</button>
</form>
<div class="login-links">
<span>สมัครสมาชิก</span>
<a href="/">กลับสู่หน้าหลัก</a>
</div>
</div>
`)
		return err
	})
	return layout.Base(data.PageData, body)
}
