// Package logcat classifies and colorizes Android device log lines.
//
// The classifier keys off the single-letter priority marker logcat embeds
// in each line (" V ", " D ", " I ", " W ", " E ", " F "). Lines with no
// marker pass through unstyled. Classification is cosmetic: it decides the
// color a line renders in and nothing else, so a misclassified line can
// never change a command's outcome.
package logcat
