/*
The snippet package provides functions and types for reading and writing
snippet files. A snippet file is a sequence of named blocks of text. Each
block starts with a line giving its title:

	-- title --

and ends with the line:

	-- end --

Every line outside a block is a comment and is ignored. The Parser reads a
snippet file lazily, a line at a time, so that only the block currently
being read need be held in memory. Snippets can also be added to a Parser
and the whole collection written back out in the same format; comments are
not preserved.
*/
package snippet
