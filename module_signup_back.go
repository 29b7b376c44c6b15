//go:build !wasm

package signin

func (m *signUpModule) RenderHTML() string {
	m.form.SetSSR(true)
	return m.form.RenderHTML() + `<a href="/toggle">Already have an account? Sign in</a>`
}
