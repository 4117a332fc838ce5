//go:build doslike

package dos

// #include "dos.h"
import "C"

var nativeKeys = [KeyCount + 1]C.enum_keycode_t{
	KeyInvalid:           C.KEY_INVALID,
	KeyLButton:           C.KEY_LBUTTON,
	KeyRButton:           C.KEY_RBUTTON,
	KeyCancel:            C.KEY_CANCEL,
	KeyMButton:           C.KEY_MBUTTON,
	KeyXButton1:          C.KEY_XBUTTON1,
	KeyXButton2:          C.KEY_XBUTTON2,
	KeyBack:              C.KEY_BACK,
	KeyTab:               C.KEY_TAB,
	KeyClear:             C.KEY_CLEAR,
	KeyReturn:            C.KEY_RETURN,
	KeyShift:             C.KEY_SHIFT,
	KeyControl:           C.KEY_CONTROL,
	KeyMenu:              C.KEY_MENU,
	KeyPause:             C.KEY_PAUSE,
	KeyCapital:           C.KEY_CAPITAL,
	KeyKana:              C.KEY_KANA,
	KeyHangul:            C.KEY_HANGUL,
	KeyJunja:             C.KEY_JUNJA,
	KeyFinal:             C.KEY_FINAL,
	KeyHanja:             C.KEY_HANJA,
	KeyKanji:             C.KEY_KANJI,
	KeyEscape:            C.KEY_ESCAPE,
	KeyConvert:           C.KEY_CONVERT,
	KeyNonConvert:        C.KEY_NONCONVERT,
	KeyAccept:            C.KEY_ACCEPT,
	KeyModeChange:        C.KEY_MODECHANGE,
	KeySpace:             C.KEY_SPACE,
	KeyPrior:             C.KEY_PRIOR,
	KeyNext:              C.KEY_NEXT,
	KeyEnd:               C.KEY_END,
	KeyHome:              C.KEY_HOME,
	KeyLeft:              C.KEY_LEFT,
	KeyUp:                C.KEY_UP,
	KeyRight:             C.KEY_RIGHT,
	KeyDown:              C.KEY_DOWN,
	KeySelect:            C.KEY_SELECT,
	KeyPrint:             C.KEY_PRINT,
	KeyExec:              C.KEY_EXEC,
	KeySnapshot:          C.KEY_SNAPSHOT,
	KeyInsert:            C.KEY_INSERT,
	KeyDelete:            C.KEY_DELETE,
	KeyHelp:              C.KEY_HELP,
	Key0:                 C.KEY_0,
	Key1:                 C.KEY_1,
	Key2:                 C.KEY_2,
	Key3:                 C.KEY_3,
	Key4:                 C.KEY_4,
	Key5:                 C.KEY_5,
	Key6:                 C.KEY_6,
	Key7:                 C.KEY_7,
	Key8:                 C.KEY_8,
	Key9:                 C.KEY_9,
	KeyA:                 C.KEY_A,
	KeyB:                 C.KEY_B,
	KeyC:                 C.KEY_C,
	KeyD:                 C.KEY_D,
	KeyE:                 C.KEY_E,
	KeyF:                 C.KEY_F,
	KeyG:                 C.KEY_G,
	KeyH:                 C.KEY_H,
	KeyI:                 C.KEY_I,
	KeyJ:                 C.KEY_J,
	KeyK:                 C.KEY_K,
	KeyL:                 C.KEY_L,
	KeyM:                 C.KEY_M,
	KeyN:                 C.KEY_N,
	KeyO:                 C.KEY_O,
	KeyP:                 C.KEY_P,
	KeyQ:                 C.KEY_Q,
	KeyR:                 C.KEY_R,
	KeyS:                 C.KEY_S,
	KeyT:                 C.KEY_T,
	KeyU:                 C.KEY_U,
	KeyV:                 C.KEY_V,
	KeyW:                 C.KEY_W,
	KeyX:                 C.KEY_X,
	KeyY:                 C.KEY_Y,
	KeyZ:                 C.KEY_Z,
	KeyLWin:              C.KEY_LWIN,
	KeyRWin:              C.KEY_RWIN,
	KeyApps:              C.KEY_APPS,
	KeySleep:             C.KEY_SLEEP,
	KeyNumpad0:           C.KEY_NUMPAD0,
	KeyNumpad1:           C.KEY_NUMPAD1,
	KeyNumpad2:           C.KEY_NUMPAD2,
	KeyNumpad3:           C.KEY_NUMPAD3,
	KeyNumpad4:           C.KEY_NUMPAD4,
	KeyNumpad5:           C.KEY_NUMPAD5,
	KeyNumpad6:           C.KEY_NUMPAD6,
	KeyNumpad7:           C.KEY_NUMPAD7,
	KeyNumpad8:           C.KEY_NUMPAD8,
	KeyNumpad9:           C.KEY_NUMPAD9,
	KeyMultiply:          C.KEY_MULTIPLY,
	KeyAdd:               C.KEY_ADD,
	KeySeparator:         C.KEY_SEPARATOR,
	KeySubtract:          C.KEY_SUBTRACT,
	KeyDecimal:           C.KEY_DECIMAL,
	KeyDivide:            C.KEY_DIVIDE,
	KeyF1:                C.KEY_F1,
	KeyF2:                C.KEY_F2,
	KeyF3:                C.KEY_F3,
	KeyF4:                C.KEY_F4,
	KeyF5:                C.KEY_F5,
	KeyF6:                C.KEY_F6,
	KeyF7:                C.KEY_F7,
	KeyF8:                C.KEY_F8,
	KeyF9:                C.KEY_F9,
	KeyF10:               C.KEY_F10,
	KeyF11:               C.KEY_F11,
	KeyF12:               C.KEY_F12,
	KeyF13:               C.KEY_F13,
	KeyF14:               C.KEY_F14,
	KeyF15:               C.KEY_F15,
	KeyF16:               C.KEY_F16,
	KeyF17:               C.KEY_F17,
	KeyF18:               C.KEY_F18,
	KeyF19:               C.KEY_F19,
	KeyF20:               C.KEY_F20,
	KeyF21:               C.KEY_F21,
	KeyF22:               C.KEY_F22,
	KeyF23:               C.KEY_F23,
	KeyF24:               C.KEY_F24,
	KeyNumLock:           C.KEY_NUMLOCK,
	KeyScroll:            C.KEY_SCROLL,
	KeyLShift:            C.KEY_LSHIFT,
	KeyRShift:            C.KEY_RSHIFT,
	KeyLControl:          C.KEY_LCONTROL,
	KeyRControl:          C.KEY_RCONTROL,
	KeyLMenu:             C.KEY_LMENU,
	KeyRMenu:             C.KEY_RMENU,
	KeyBrowserBack:       C.KEY_BROWSER_BACK,
	KeyBrowserForward:    C.KEY_BROWSER_FORWARD,
	KeyBrowserRefresh:    C.KEY_BROWSER_REFRESH,
	KeyBrowserStop:       C.KEY_BROWSER_STOP,
	KeyBrowserSearch:     C.KEY_BROWSER_SEARCH,
	KeyBrowserFavorites:  C.KEY_BROWSER_FAVORITES,
	KeyBrowserHome:       C.KEY_BROWSER_HOME,
	KeyVolumeMute:        C.KEY_VOLUME_MUTE,
	KeyVolumeDown:        C.KEY_VOLUME_DOWN,
	KeyVolumeUp:          C.KEY_VOLUME_UP,
	KeyMediaNextTrack:    C.KEY_MEDIA_NEXT_TRACK,
	KeyMediaPrevTrack:    C.KEY_MEDIA_PREV_TRACK,
	KeyMediaStop:         C.KEY_MEDIA_STOP,
	KeyMediaPlayPause:    C.KEY_MEDIA_PLAY_PAUSE,
	KeyLaunchMail:        C.KEY_LAUNCH_MAIL,
	KeyLaunchMediaSelect: C.KEY_LAUNCH_MEDIA_SELECT,
	KeyLaunchApp1:        C.KEY_LAUNCH_APP1,
	KeyLaunchApp2:        C.KEY_LAUNCH_APP2,
	KeyOEM1:              C.KEY_OEM_1,
	KeyOEMPlus:           C.KEY_OEM_PLUS,
	KeyOEMComma:          C.KEY_OEM_COMMA,
	KeyOEMMinus:          C.KEY_OEM_MINUS,
	KeyOEMPeriod:         C.KEY_OEM_PERIOD,
	KeyOEM2:              C.KEY_OEM_2,
	KeyOEM3:              C.KEY_OEM_3,
	KeyOEM4:              C.KEY_OEM_4,
	KeyOEM5:              C.KEY_OEM_5,
	KeyOEM6:              C.KEY_OEM_6,
	KeyOEM7:              C.KEY_OEM_7,
	KeyOEM8:              C.KEY_OEM_8,
	KeyOEM102:            C.KEY_OEM_102,
	KeyProcessKey:        C.KEY_PROCESSKEY,
	KeyAttn:              C.KEY_ATTN,
	KeyCrSel:             C.KEY_CRSEL,
	KeyExSel:             C.KEY_EXSEL,
	KeyErEOF:             C.KEY_EREOF,
	KeyPlay:              C.KEY_PLAY,
	KeyZoom:              C.KEY_ZOOM,
	KeyNoName:            C.KEY_NONAME,
	KeyPA1:               C.KEY_PA1,
	KeyOEMClear:          C.KEY_OEM_CLEAR,
	KeyCount:             C.KEYCOUNT,
}
