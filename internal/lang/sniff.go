package lang

import "bytes"

// sniffLimit bounds how much of a file the content sniffer inspects.
const sniffLimit = 512

// sniffLanguage guesses a language id from file content alone. It only
// reports high-confidence signals (shebangs, document markers); anything
// ambiguous returns "" so resolution fails instead of misclassifying.
func sniffLanguage(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	head := content
	if len(head) > sniffLimit {
		head = head[:sniffLimit]
	}

	if bytes.HasPrefix(head, []byte("#!")) {
		line := head
		if idx := bytes.IndexByte(line, '\n'); idx >= 0 {
			line = line[:idx]
		}
		switch {
		case bytes.Contains(line, []byte("python")):
			return "python"
		case bytes.Contains(line, []byte("node")):
			return "javascript"
		case bytes.Contains(line, []byte("ruby")):
			return "ruby"
		case bytes.Contains(line, []byte("php")):
			return "php"
		}
		return ""
	}

	if bytes.Contains(head, []byte("<?php")) {
		return "php"
	}

	trimmed := bytes.TrimLeft(head, " \t\r\n")
	lower := bytes.ToLower(trimmed)
	if bytes.HasPrefix(lower, []byte("<!doctype html")) || bytes.HasPrefix(lower, []byte("<html")) {
		return "html"
	}

	return ""
}
