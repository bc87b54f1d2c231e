// Package ui contains the Bubble Tea program that presents the arcade menu to
// one viewer. The Model type focuses on message orchestration while dedicated
// helpers own key dispatch, painting, and requests to the session owner.
//
// Message flow:
//   - Key and mouse messages are translated through a flat lookup table built
//     from the Keymap. Strings outside the table are ignored.
//   - Navigation mutates the selection held in internal/ui/state.Selection.
//     Nothing is painted on input; the next tick picks the change up.
//   - A tick message repaints the surface through internal/ui/render and
//     schedules the following tick, so frames arrive at a fixed rate.
//   - Activate and quit are forwarded through internal/ui/command.Bus to the
//     session owner. Once the owner replies the model asks Bubble Tea to quit.
//
// State ownership:
//   - Entries are fixed when the model is created; catalog reloads only affect
//     sessions started afterwards.
//   - The header image is shared read-only across sessions and comes from the
//     process-wide internal/assets.Registry.
package ui
