// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// StdinHeight is the number of lines for the console's stdin textarea
	StdinHeight = 3

	// ChatInputHeight is the number of lines for the assistant input textarea
	ChatInputHeight = 3

	// InputPaddingWidth is the horizontal padding inside an input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// ChatInputTotalHeight is the total height of the assistant input (textarea + borders)
	ChatInputTotalHeight = ChatInputHeight + BorderSize

	// GutterPadding is the space between the line numbers and the code
	GutterPadding = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth matches the narrowest viewport the layout accepts
	MinTerminalWidth = 80

	// MinTerminalHeight leaves room for the stdin box and a few lines of output
	MinTerminalHeight = 16
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 40
)

// Timing
const (
	// DefaultFlashDuration is how long a footer flash stays visible
	DefaultFlashDuration = 3 * time.Second

	// FlashTickInterval is how often an active flash is checked for expiry
	FlashTickInterval = 500 * time.Millisecond

	// ElapsedTickInterval refreshes the running stopwatch in the console
	ElapsedTickInterval = 100 * time.Millisecond
)
