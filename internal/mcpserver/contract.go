package mcpserver

// TaskFormatContract describes the todo.txt line format that query_tasks
// understands. It is served as a resource so clients can read it before
// suggesting edits.
const TaskFormatContract = `# writedown task format

The task file is ` + "`todo.txt`" + ` at the notes root: plain text, one task per line,
no header.

## Line rules

- A line starting with ` + "`x `" + ` (lower-case x and a space) is **done**. Every other
  line is **pending**.
- A line starting with ` + "`(A)`" + `, i.e. open paren, one character, close paren, has
  **priority** A. Priority is independent of done state.
- ` + "`+project`" + ` and ` + "`@context`" + ` anywhere in the line are sigils.

## Queries

Tokens are evaluated in two stages:

1. Selection, first match wins:
   - ` + "`p`" + ` or ` + "`priority`" + `: lines with a priority, sorted alphabetically.
   - ` + "`done`" + `: done lines, file order.
   - otherwise: pending lines, file order.
2. Sigil filter: tokens starting with ` + "`+`" + ` or ` + "`@`" + ` keep lines that contain
   any of them as plain text. ` + "`+work`" + ` also matches ` + "`+workshop`" + `.

## Example

` + "```" + `
(A) call the bank +finance @phone
(B) draft quarterly plan +work
x 2024-03-01 renew passport
water the plants @home
` + "```" + `
`
