package script

// demoScript is the stock demonstration: six people, eight friendships,
// two rejected calls, then the listing.
const demoScript = `
add Alice
add Bob
add Charlie
add David
add Eve
add Frank

friend Alice Bob
friend Alice Charlie
friend Bob David
friend Charlie Eve
friend David Frank
friend Eve Frank
friend Alice Frank
friend Bob Eve

# Zoe was never added; Alice already exists
friend Alice Zoe
add Alice

echo
echo Current Social Network:
list
`

// Demo returns the built-in demonstration sequence.
func Demo() []Command {
	cmds, err := ParseString(demoScript)
	if err != nil {
		panic("script: demo does not parse: " + err.Error())
	}
	return cmds
}
