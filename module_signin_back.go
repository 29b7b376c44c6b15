//go:build !wasm

package signin

func (m *signInModule) RenderHTML() string {
	m.form.SetSSR(true)
	out := m.form.RenderHTML()
	for _, name := range m.providers {
		out += `<a href="/oauth/` + name + `">Sign in with ` + name + `</a>`
	}
	out += `<a href="/toggle">Create an account</a>`
	return out
}
