package inject

import "winject/internal/winapi"

// extendedKeys is the fixed set of virtual keys that require
// KEYEVENTF_EXTENDEDKEY during injection. Each shares its base code with a
// numeric-keypad key, and without the flag a shifted injection resolves to
// the keypad twin.
// http://letcoderock.blogspot.fr/2011/10/sendinput-with-shift-key-not-work.html
var extendedKeys = map[uint16]struct{}{
	winapi.VK_UP:     {},
	winapi.VK_DOWN:   {},
	winapi.VK_LEFT:   {},
	winapi.VK_RIGHT:  {},
	winapi.VK_HOME:   {},
	winapi.VK_END:    {},
	winapi.VK_PRIOR:  {},
	winapi.VK_NEXT:   {},
	winapi.VK_INSERT: {},
	winapi.VK_DELETE: {},
}

// isExtendedKey reports whether vk is a member of the extended key set.
// Membership is exact identity, never a range check.
func isExtendedKey(vk uint16) bool {
	_, ok := extendedKeys[vk]
	return ok
}
