package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Цвета палитры терминала, вывод следует теме пользователя
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	ColorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	ColorDefault = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Underline(true)

	StyleTableHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleTableRow    = lipgloss.NewStyle().Foreground(ColorDefault)
	StyleTableRowAlt = lipgloss.NewStyle().Foreground(ColorDefault).Faint(true)
	StyleTableBorder = lipgloss.NewStyle().Foreground(ColorMuted)

	IconSuccess = "✔"
	IconError   = "✘"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
)

// FormatSuccess возвращает сообщение об успехе с иконкой
func FormatSuccess(msg string) string {
	return StyleSuccess.Render(IconSuccess + " " + msg)
}

// FormatError возвращает сообщение об ошибке с иконкой
func FormatError(msg string) string {
	return StyleError.Render(IconError + " " + msg)
}

// FormatInfo возвращает информационное сообщение с иконкой
func FormatInfo(msg string) string {
	return StyleInfo.Render(IconInfo + " " + msg)
}

// FormatWarning возвращает предупреждение с иконкой
func FormatWarning(msg string) string {
	return StyleWarning.Render(IconWarning + " " + msg)
}

// FormatMuted возвращает приглушённый текст
func FormatMuted(text string) string {
	return StyleMuted.Render(text)
}
