package dos

import "strconv"

// Key is a keyboard or mouse button code.
type Key uint32

const (
	KeyInvalid Key = iota
	KeyLButton
	KeyRButton
	KeyCancel
	KeyMButton
	KeyXButton1
	KeyXButton2
	KeyBack
	KeyTab
	KeyClear
	KeyReturn
	KeyShift
	KeyControl
	KeyMenu
	KeyPause
	KeyCapital
	KeyKana
	KeyHangul
	KeyJunja
	KeyFinal
	KeyHanja
	KeyKanji
	KeyEscape
	KeyConvert
	KeyNonConvert
	KeyAccept
	KeyModeChange
	KeySpace
	KeyPrior
	KeyNext
	KeyEnd
	KeyHome
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeySelect
	KeyPrint
	KeyExec
	KeySnapshot
	KeyInsert
	KeyDelete
	KeyHelp
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyLWin
	KeyRWin
	KeyApps
	KeySleep
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyMultiply
	KeyAdd
	KeySeparator
	KeySubtract
	KeyDecimal
	KeyDivide
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyNumLock
	KeyScroll
	KeyLShift
	KeyRShift
	KeyLControl
	KeyRControl
	KeyLMenu
	KeyRMenu
	KeyBrowserBack
	KeyBrowserForward
	KeyBrowserRefresh
	KeyBrowserStop
	KeyBrowserSearch
	KeyBrowserFavorites
	KeyBrowserHome
	KeyVolumeMute
	KeyVolumeDown
	KeyVolumeUp
	KeyMediaNextTrack
	KeyMediaPrevTrack
	KeyMediaStop
	KeyMediaPlayPause
	KeyLaunchMail
	KeyLaunchMediaSelect
	KeyLaunchApp1
	KeyLaunchApp2
	KeyOEM1
	KeyOEMPlus
	KeyOEMComma
	KeyOEMMinus
	KeyOEMPeriod
	KeyOEM2
	KeyOEM3
	KeyOEM4
	KeyOEM5
	KeyOEM6
	KeyOEM7
	KeyOEM8
	KeyOEM102
	KeyProcessKey
	KeyAttn
	KeyCrSel
	KeyExSel
	KeyErEOF
	KeyPlay
	KeyZoom
	KeyNoName
	KeyPA1
	KeyOEMClear

	KeyCount
)

var keyNames = [KeyCount]string{
	KeyInvalid:           "KEY_INVALID",
	KeyLButton:           "KEY_LBUTTON",
	KeyRButton:           "KEY_RBUTTON",
	KeyCancel:            "KEY_CANCEL",
	KeyMButton:           "KEY_MBUTTON",
	KeyXButton1:          "KEY_XBUTTON1",
	KeyXButton2:          "KEY_XBUTTON2",
	KeyBack:              "KEY_BACK",
	KeyTab:               "KEY_TAB",
	KeyClear:             "KEY_CLEAR",
	KeyReturn:            "KEY_RETURN",
	KeyShift:             "KEY_SHIFT",
	KeyControl:           "KEY_CONTROL",
	KeyMenu:              "KEY_MENU",
	KeyPause:             "KEY_PAUSE",
	KeyCapital:           "KEY_CAPITAL",
	KeyKana:              "KEY_KANA",
	KeyHangul:            "KEY_HANGUL",
	KeyJunja:             "KEY_JUNJA",
	KeyFinal:             "KEY_FINAL",
	KeyHanja:             "KEY_HANJA",
	KeyKanji:             "KEY_KANJI",
	KeyEscape:            "KEY_ESCAPE",
	KeyConvert:           "KEY_CONVERT",
	KeyNonConvert:        "KEY_NONCONVERT",
	KeyAccept:            "KEY_ACCEPT",
	KeyModeChange:        "KEY_MODECHANGE",
	KeySpace:             "KEY_SPACE",
	KeyPrior:             "KEY_PRIOR",
	KeyNext:              "KEY_NEXT",
	KeyEnd:               "KEY_END",
	KeyHome:              "KEY_HOME",
	KeyLeft:              "KEY_LEFT",
	KeyUp:                "KEY_UP",
	KeyRight:             "KEY_RIGHT",
	KeyDown:              "KEY_DOWN",
	KeySelect:            "KEY_SELECT",
	KeyPrint:             "KEY_PRINT",
	KeyExec:              "KEY_EXEC",
	KeySnapshot:          "KEY_SNAPSHOT",
	KeyInsert:            "KEY_INSERT",
	KeyDelete:            "KEY_DELETE",
	KeyHelp:              "KEY_HELP",
	Key0:                 "KEY_0",
	Key1:                 "KEY_1",
	Key2:                 "KEY_2",
	Key3:                 "KEY_3",
	Key4:                 "KEY_4",
	Key5:                 "KEY_5",
	Key6:                 "KEY_6",
	Key7:                 "KEY_7",
	Key8:                 "KEY_8",
	Key9:                 "KEY_9",
	KeyA:                 "KEY_A",
	KeyB:                 "KEY_B",
	KeyC:                 "KEY_C",
	KeyD:                 "KEY_D",
	KeyE:                 "KEY_E",
	KeyF:                 "KEY_F",
	KeyG:                 "KEY_G",
	KeyH:                 "KEY_H",
	KeyI:                 "KEY_I",
	KeyJ:                 "KEY_J",
	KeyK:                 "KEY_K",
	KeyL:                 "KEY_L",
	KeyM:                 "KEY_M",
	KeyN:                 "KEY_N",
	KeyO:                 "KEY_O",
	KeyP:                 "KEY_P",
	KeyQ:                 "KEY_Q",
	KeyR:                 "KEY_R",
	KeyS:                 "KEY_S",
	KeyT:                 "KEY_T",
	KeyU:                 "KEY_U",
	KeyV:                 "KEY_V",
	KeyW:                 "KEY_W",
	KeyX:                 "KEY_X",
	KeyY:                 "KEY_Y",
	KeyZ:                 "KEY_Z",
	KeyLWin:              "KEY_LWIN",
	KeyRWin:              "KEY_RWIN",
	KeyApps:              "KEY_APPS",
	KeySleep:             "KEY_SLEEP",
	KeyNumpad0:           "KEY_NUMPAD0",
	KeyNumpad1:           "KEY_NUMPAD1",
	KeyNumpad2:           "KEY_NUMPAD2",
	KeyNumpad3:           "KEY_NUMPAD3",
	KeyNumpad4:           "KEY_NUMPAD4",
	KeyNumpad5:           "KEY_NUMPAD5",
	KeyNumpad6:           "KEY_NUMPAD6",
	KeyNumpad7:           "KEY_NUMPAD7",
	KeyNumpad8:           "KEY_NUMPAD8",
	KeyNumpad9:           "KEY_NUMPAD9",
	KeyMultiply:          "KEY_MULTIPLY",
	KeyAdd:               "KEY_ADD",
	KeySeparator:         "KEY_SEPARATOR",
	KeySubtract:          "KEY_SUBTRACT",
	KeyDecimal:           "KEY_DECIMAL",
	KeyDivide:            "KEY_DIVIDE",
	KeyF1:                "KEY_F1",
	KeyF2:                "KEY_F2",
	KeyF3:                "KEY_F3",
	KeyF4:                "KEY_F4",
	KeyF5:                "KEY_F5",
	KeyF6:                "KEY_F6",
	KeyF7:                "KEY_F7",
	KeyF8:                "KEY_F8",
	KeyF9:                "KEY_F9",
	KeyF10:               "KEY_F10",
	KeyF11:               "KEY_F11",
	KeyF12:               "KEY_F12",
	KeyF13:               "KEY_F13",
	KeyF14:               "KEY_F14",
	KeyF15:               "KEY_F15",
	KeyF16:               "KEY_F16",
	KeyF17:               "KEY_F17",
	KeyF18:               "KEY_F18",
	KeyF19:               "KEY_F19",
	KeyF20:               "KEY_F20",
	KeyF21:               "KEY_F21",
	KeyF22:               "KEY_F22",
	KeyF23:               "KEY_F23",
	KeyF24:               "KEY_F24",
	KeyNumLock:           "KEY_NUMLOCK",
	KeyScroll:            "KEY_SCROLL",
	KeyLShift:            "KEY_LSHIFT",
	KeyRShift:            "KEY_RSHIFT",
	KeyLControl:          "KEY_LCONTROL",
	KeyRControl:          "KEY_RCONTROL",
	KeyLMenu:             "KEY_LMENU",
	KeyRMenu:             "KEY_RMENU",
	KeyBrowserBack:       "KEY_BROWSER_BACK",
	KeyBrowserForward:    "KEY_BROWSER_FORWARD",
	KeyBrowserRefresh:    "KEY_BROWSER_REFRESH",
	KeyBrowserStop:       "KEY_BROWSER_STOP",
	KeyBrowserSearch:     "KEY_BROWSER_SEARCH",
	KeyBrowserFavorites:  "KEY_BROWSER_FAVORITES",
	KeyBrowserHome:       "KEY_BROWSER_HOME",
	KeyVolumeMute:        "KEY_VOLUME_MUTE",
	KeyVolumeDown:        "KEY_VOLUME_DOWN",
	KeyVolumeUp:          "KEY_VOLUME_UP",
	KeyMediaNextTrack:    "KEY_MEDIA_NEXT_TRACK",
	KeyMediaPrevTrack:    "KEY_MEDIA_PREV_TRACK",
	KeyMediaStop:         "KEY_MEDIA_STOP",
	KeyMediaPlayPause:    "KEY_MEDIA_PLAY_PAUSE",
	KeyLaunchMail:        "KEY_LAUNCH_MAIL",
	KeyLaunchMediaSelect: "KEY_LAUNCH_MEDIA_SELECT",
	KeyLaunchApp1:        "KEY_LAUNCH_APP1",
	KeyLaunchApp2:        "KEY_LAUNCH_APP2",
	KeyOEM1:              "KEY_OEM_1",
	KeyOEMPlus:           "KEY_OEM_PLUS",
	KeyOEMComma:          "KEY_OEM_COMMA",
	KeyOEMMinus:          "KEY_OEM_MINUS",
	KeyOEMPeriod:         "KEY_OEM_PERIOD",
	KeyOEM2:              "KEY_OEM_2",
	KeyOEM3:              "KEY_OEM_3",
	KeyOEM4:              "KEY_OEM_4",
	KeyOEM5:              "KEY_OEM_5",
	KeyOEM6:              "KEY_OEM_6",
	KeyOEM7:              "KEY_OEM_7",
	KeyOEM8:              "KEY_OEM_8",
	KeyOEM102:            "KEY_OEM_102",
	KeyProcessKey:        "KEY_PROCESSKEY",
	KeyAttn:              "KEY_ATTN",
	KeyCrSel:             "KEY_CRSEL",
	KeyExSel:             "KEY_EXSEL",
	KeyErEOF:             "KEY_EREOF",
	KeyPlay:              "KEY_PLAY",
	KeyZoom:              "KEY_ZOOM",
	KeyNoName:            "KEY_NONAME",
	KeyPA1:               "KEY_PA1",
	KeyOEMClear:          "KEY_OEM_CLEAR",
}

func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return "Key(" + strconv.FormatUint(uint64(k), 10) + ")"
}
