package widget

import (
	"strings"
	"unicode/utf8"
)

// WrapWords 按单词贪心换行，宽度由 measure 计算
// 单词本身超过 maxWidth 时按字符强制断行；maxWidth <= 0 时不换行
func WrapWords(textStr string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(textStr)
	if len(words) == 0 || maxWidth <= 0 {
		return []string{strings.TrimSpace(textStr)}
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}

		if measure(testLine) <= maxWidth {
			currentLine = testLine
			continue
		}

		// 当前行结束，单词移到新行
		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		if measure(word) <= maxWidth {
			currentLine = word
			continue
		}

		// 单词本身超宽，按字符强制断行
		pieces := breakWord(word, maxWidth, measure)
		lines = append(lines, pieces[:len(pieces)-1]...)
		currentLine = pieces[len(pieces)-1]
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// breakWord 按字符拆分超宽单词，至少返回一段
func breakWord(word string, maxWidth float64, measure func(string) float64) []string {
	var pieces []string
	current := ""

	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		word = word[size:]
		char := string(r)

		if current != "" && measure(current+char) > maxWidth {
			pieces = append(pieces, current)
			current = char
			continue
		}
		current += char
	}

	return append(pieces, current)
}
