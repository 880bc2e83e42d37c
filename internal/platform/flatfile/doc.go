// Package flatfile persists the task list as plain text, one task per line:
//
//	<description>;<priority>;<deadline_seconds>
//
// There is no escaping, so descriptions must not contain ';'.
package flatfile
