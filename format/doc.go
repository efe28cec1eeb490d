// Package format turns inline markup into styled terminal text.
//
// # Overview
//
// Messages written through a wren output channel may carry inline tags:
//
//	<info>Listening on :8080</info>
//	<error>connection refused</error>
//
// The Markup formatter renders these tags with lipgloss styles when
// decoration is enabled, and strips them when it is not. Either way the
// message text itself always survives.
//
// # Custom styles
//
// Register your own tags with SetStyle:
//
//	f := format.NewMarkup()
//	f.SetStyle("header", lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true))
//
// or load a whole set from a YAML theme file:
//
//	theme, err := format.LoadTheme("theme.yml")
//	if err != nil {
//	    return err
//	}
//	theme.Apply(f)
//
// # Escaping
//
// Use Escape when a message contains user data that must not be parsed
// as markup:
//
//	out.Println("<info>" + format.Escape(userInput) + "</info>")
package format
