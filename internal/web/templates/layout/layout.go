package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/chayapatp/topupstore/internal/model"
)

// FlashMessage is a one-shot notification shown at the top of the page
type FlashMessage struct {
	Type    string // "success", "error", "info"
	Message string
}

// PageData carries the fields every page needs
type PageData struct {
	Title   string
	Account *model.Account // nil when logged out
	Flash   *FlashMessage
}

// Base wraps a page body in the shared document shell and navigation
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="th">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - TopUp Store</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body class="store">
`, templ.EscapeString(data.Title)); err != nil {
			return err
		}

		if err := nav(data).Render(ctx, w); err != nil {
			return err
		}

		if data.Flash != nil {
			if _, err := fmt.Fprintf(w, `<div class="flash flash-%s">%s</div>
`, templ.EscapeString(data.Flash.Type), templ.EscapeString(data.Flash.Message)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<main class="content">
`); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main>
</body>
</html>
`)
		return err
	})
}

func nav(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="topbar">
<nav>
<a href="/" class="logo">TopUp Store</a>
`); err != nil {
			return err
		}

		if data.Account == nil {
			if _, err := io.WriteString(w, `<div class="nav-links">
<a href="/login" class="btn-outline">เข้าสู่ระบบ</a>
<span class="btn-primary">สมัครสมาชิก</span>
</div>
`); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, `<div class="nav-links">
<span class="nav-user">%s</span>
<a href="/profile">โปรไฟล์</a>
<a href="/">รายการเกม</a>
<form action="/logout" method="post" class="inline">
<button type="submit" class="btn-outline">ออกจากระบบ</button>
</form>
</div>
`, templ.EscapeString(data.Account.FullName)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</nav>
</header>
`)
		return err
	})
}
