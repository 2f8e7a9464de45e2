package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLineEnding sets the buffer's line ending style.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithTabWidth sets the buffer's tab width.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithMaxEditLog bounds how many edits are kept for lazy position
// resolution before all live positions are resolved and the log is reset.
func WithMaxEditLog(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.maxEditLog = n
		}
	}
}

// DetectLineEnding returns LineEndingCRLF if CRLF sequences outnumber bare
// LFs in text, otherwise LineEndingLF.
func DetectLineEnding(text string) LineEnding {
	var lf, crlf int
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		if i > 0 && text[i-1] == '\r' {
			crlf++
		} else {
			lf++
		}
	}
	if crlf > lf {
		return LineEndingCRLF
	}
	return LineEndingLF
}
