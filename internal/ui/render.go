package ui

// The literal text of every line is fixed; styling only wraps it. With
// colored false the bare line is returned untouched, which keeps piped
// output byte-exact.

// BannerText is the fixed startup line identifying the tool.
const BannerText = "Simple Calculator"

// Banner returns the startup banner, with the gradient logo when colored.
func Banner(colored bool) string {
	if !colored {
		return BannerText
	}
	return GenerateLogo() + "\n" + bannerStyle.Render(BannerText)
}

// ResultLine renders the success outcome for an already formatted value.
func ResultLine(value string, colored bool) string {
	line := "Result: " + value
	if !colored {
		return line
	}
	return resultStyle.Render(line)
}

// ErrorLine renders a recoverable-outcome message such as the
// division-by-zero or invalid-operator line.
func ErrorLine(msg string, colored bool) string {
	if !colored {
		return msg
	}
	return errorStyle.Render(msg)
}
