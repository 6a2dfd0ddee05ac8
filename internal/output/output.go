package output

import (
	"fmt"
	"io"

	"ccwc/internal/config"
	"ccwc/internal/count"
)

// Line renders the single report line for mode, without the newline.
func Line(mode config.Mode, c count.Counts, src config.Source) (string, error) {
	switch mode {
	case config.ModeAll:
		return fmt.Sprintf("%d %d %d %s", c.Lines, c.Words, c.Bytes, src.Name()), nil
	case config.ModeBytes:
		return fmt.Sprintf("%d", c.Bytes), nil
	case config.ModeLines:
		return fmt.Sprintf("%d", c.Lines), nil
	case config.ModeWords:
		return fmt.Sprintf("%d", c.Words), nil
	case config.ModeChars:
		return fmt.Sprintf("%d", c.Chars), nil
	default:
		return "", &config.ModeErr{Token: string(mode)}
	}
}

func Write(w io.Writer, mode config.Mode, c count.Counts, src config.Source) error {
	line, err := Line(mode, c, src)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, line)
	return err
}
