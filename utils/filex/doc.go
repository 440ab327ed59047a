// Package filex supplies platform file-name rules to the string toolkit.
//
// Package: filex
// Title: File Name Character Rules
// Description: Provides the set of characters that may not appear in a file
//              name on the running platform (or on a named one). This is the
//              only platform lookup textkit performs; nothing here touches
//              the file system.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
//
// The sets follow the rules the major runtimes publish: Windows rejects the
// control characters U+0000 to U+001F plus " < > | : * ? \ /, every other
// system only rejects NUL and the path separator. Names that are reserved
// on Windows (CON, NUL, ...) are not covered.
package filex
