package popup

// HelpText is the body of the help dialog, written as markdown.
const HelpText = `# rocket

A small multi-buffer editor.

* Type to insert text; **Enter** splits the line, **Backspace**/**Delete** remove.
* Arrows, **Home**/**End** and **PgUp**/**PgDn** move the cursor.
* In dialogs, **←**/**→** pick a button and **Enter** confirms.
* In save and load dialogs, **Tab** completes the path.
`
