package shell

// Integration returns a shell snippet that embeds the tray line into the
// prompt. The snippet re-runs the binary before each prompt, so the line
// tracks directory changes without a resident process. Meant to be eval'd
// from the shell rc file:
//
//	eval "$(echo-tray -shell zsh)"
func Integration(sh ShellType) string {
	switch sh {
	case Zsh:
		return zshIntegration
	case Fish:
		return fishIntegration
	case Ksh:
		return kshIntegration
	default:
		return bashIntegration
	}
}

const bashIntegration = `# echo-tray bash integration
__echo_tray() {
  echo-tray -width "${COLUMNS:-0}"
}
if [[ ":$PROMPT_COMMAND:" != *":__echo_tray:"* ]]; then
  PROMPT_COMMAND="__echo_tray${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
fi
`

const zshIntegration = `# echo-tray zsh integration
autoload -Uz add-zsh-hook
__echo_tray_precmd() {
  RPROMPT="$(echo-tray -width "$COLUMNS")"
}
add-zsh-hook precmd __echo_tray_precmd
`

const fishIntegration = `# echo-tray fish integration
function fish_right_prompt
  echo-tray -width "$COLUMNS"
end
`

const kshIntegration = `# echo-tray ksh integration
PS1='$(echo-tray)'"$PS1"
`
