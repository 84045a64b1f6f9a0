package common

import (
	"fmt"
	"log"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
}

// Error messages
const (
	ErrFailedToReadImage     = "failed to read memory card image"
	ErrFailedToParseImage    = "failed to parse memory card image"
	ErrFailedToResolveRanges = "failed to resolve save ranges"
	ErrFailedToCreateDir     = "failed to create output directory"
	ErrFailedToCreateOutput  = "failed to create output file"
	ErrFailedToWriteSave     = "failed to write save data"
	ErrFailedToEncodeYAML    = "failed to encode YAML"
	ErrFailedToWriteListing  = "failed to write listing"
	ErrInvalidBlockArgument  = "invalid block number argument"
	ErrNothingToExtract      = "block cannot be extracted"
)

// Info messages
const (
	InfoLoadingImage    = "Loading memory card image: %s"
	InfoImageLoaded     = "Memory card image loaded: %s format, %d bytes"
	InfoListingExported = "Exported listing of %d blocks and %d saves to YAML: %s"
	InfoSaveExtracted   = "Extracted %d bytes from block %d to: %s"
	InfoIncompleteChain = "Save at block %d declares %d blocks but %d follow it on the card"
)

// Debug messages
const (
	DebugFormatDetected = "Image is %s format, card data at offset %d"
	DebugBlockStatus    = "Block %d: %s"
	DebugBlockTitle     = "Block %d save title: '%s'"
	DebugLinkedBlock    = "Block %d is a linked block"
	DebugWritingRange   = "Writing image bytes 0x%05X to 0x%05X"
)

// Warning messages
const (
	WarnCardWarning   = "%s: %s"
	WarnPartialOutput = "Could not remove partial output %s: %v"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[INFO] "+message, args...)
	} else {
		log.Printf("[INFO] %s", message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[WARN] "+message, args...)
	} else {
		log.Printf("[WARN] %s", message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[ERROR] "+message, args...)
	} else {
		log.Printf("[ERROR] %s", message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Printf("[DEBUG] "+message, args...)
	} else {
		log.Printf("[DEBUG] %s", message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}

// FormatErrorString creates a formatted error with string details
func FormatErrorString(baseMessage, details string, args ...interface{}) error {
	if len(args) > 0 {
		return fmt.Errorf("%s: "+details, append([]interface{}{baseMessage}, args...)...)
	}
	return fmt.Errorf("%s: %s", baseMessage, details)
}
