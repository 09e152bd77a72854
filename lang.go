package versioninfo

import (
	"fmt"
	"strconv"
	"strings"
)

// LangID is a Microsoft language identifier as used in StringFileInfo
// block names and VarFileInfo translation pairs.
//
// Named constants cover the long names documented for the
// StringFileInfo block; the full MS-LCID short-tag registry is reachable
// through LangIDFromTag. Identifiers outside both tables are still usable
// as raw values wherever a LangID is accepted.
//
// https://docs.microsoft.com/en-us/windows/win32/menurc/stringfileinfo-block
// https://docs.microsoft.com/en-us/openspecs/windows_protocols/ms-lcid
type LangID uint16

const (
	LangArabic                LangID = 0x0401
	LangBulgarian             LangID = 0x0402
	LangCatalan               LangID = 0x0403
	LangTraditionalChinese    LangID = 0x0404
	LangCzech                 LangID = 0x0405
	LangDanish                LangID = 0x0406
	LangGerman                LangID = 0x0407
	LangGreek                 LangID = 0x0408
	LangUSEnglish             LangID = 0x0409
	LangCastilianSpanish      LangID = 0x040A
	LangFinnish               LangID = 0x040B
	LangFrench                LangID = 0x040C
	LangHebrew                LangID = 0x040D
	LangHungarian             LangID = 0x040E
	LangIcelandic             LangID = 0x040F
	LangItalian               LangID = 0x0410
	LangJapanese              LangID = 0x0411
	LangKorean                LangID = 0x0412
	LangDutch                 LangID = 0x0413
	LangNorwegianBokmal       LangID = 0x0414
	LangPolish                LangID = 0x0415
	LangPortugueseBrazil      LangID = 0x0416
	LangRhaetoRomanic         LangID = 0x0417
	LangRomanian              LangID = 0x0418
	LangRussian               LangID = 0x0419
	LangCroatoSerbianLatin    LangID = 0x041A
	LangSlovak                LangID = 0x041B
	LangAlbanian              LangID = 0x041C
	LangSwedish               LangID = 0x041D
	LangThai                  LangID = 0x041E
	LangTurkish               LangID = 0x041F
	LangUrdu                  LangID = 0x0420
	LangBahasa                LangID = 0x0421
	LangSimplifiedChinese     LangID = 0x0804
	LangSwissGerman           LangID = 0x0807
	LangUKEnglish             LangID = 0x0809
	LangSpanishMexico         LangID = 0x080A
	LangBelgianFrench         LangID = 0x080C
	LangSwissItalian          LangID = 0x0810
	LangBelgianDutch          LangID = 0x0813
	LangNorwegianNynorsk      LangID = 0x0814
	LangPortuguesePortugal    LangID = 0x0816
	LangSerboCroatianCyrillic LangID = 0x081A
	LangCanadianFrench        LangID = 0x0C0C
	LangSwissFrench           LangID = 0x100C
)

// Long names per the StringFileInfo block documentation. Order matters:
// the first entry for an identifier wins the reverse (String) lookup.
var langNames = []struct {
	name string
	id   LangID
}{
	{"Arabic", LangArabic},
	{"Bulgarian", LangBulgarian},
	{"Catalan", LangCatalan},
	{"Traditional_Chinese", LangTraditionalChinese},
	{"Czech", LangCzech},
	{"Danish", LangDanish},
	{"German", LangGerman},
	{"Greek", LangGreek},
	{"US_English", LangUSEnglish},
	{"Castilian_Spanish", LangCastilianSpanish},
	{"Finnish", LangFinnish},
	{"French", LangFrench},
	{"Hebrew", LangHebrew},
	{"Hungarian", LangHungarian},
	{"Icelandic", LangIcelandic},
	{"Italian", LangItalian},
	{"Japanese", LangJapanese},
	{"Korean", LangKorean},
	{"Dutch", LangDutch},
	{"Norwegian_Bokmal", LangNorwegianBokmal},
	{"Swiss_Italian", LangSwissItalian},
	{"Belgian_Dutch", LangBelgianDutch},
	{"Norwegian_Nynorsk", LangNorwegianNynorsk},
	{"Polish", LangPolish},
	{"Portuguese_Brazil", LangPortugueseBrazil},
	{"Rhaeto_Romanic", LangRhaetoRomanic},
	{"Romanian", LangRomanian},
	{"Russian", LangRussian},
	{"Croato_Serbian_Latin", LangCroatoSerbianLatin},
	{"Slovak", LangSlovak},
	{"Albanian", LangAlbanian},
	{"Swedish", LangSwedish},
	{"Thai", LangThai},
	{"Turkish", LangTurkish},
	{"Urdu", LangUrdu},
	{"Bahasa", LangBahasa},
	{"Simplified_Chinese", LangSimplifiedChinese},
	{"Swiss_German", LangSwissGerman},
	{"UK_English", LangUKEnglish},
	{"Spanish_Mexico", LangSpanishMexico},
	{"Belgian_French", LangBelgianFrench},
	{"Canadian_French", LangCanadianFrench},
	{"Swiss_French", LangSwissFrench},
	{"Portuguese_Portugal", LangPortuguesePortugal},
	{"Serbo_Croatian_Cyrillic", LangSerboCroatianCyrillic},
}

// Short locale tags per MS-LCID, keyed lowercase.
var langTags = map[string]LangID{
	// Primary tags without a culture identifier (< 0x0400).
	"ar": 0x0001, "bg": 0x0002, "ca": 0x0003, "zh-hans": 0x0004,
	"cs": 0x0005, "da": 0x0006, "de": 0x0007, "el": 0x0008,
	"en": 0x0009, "es": 0x000A, "fi": 0x000B, "fr": 0x000C,
	"he": 0x000D, "hu": 0x000E, "is": 0x000F, "it": 0x0010,
	"ja": 0x0011, "ko": 0x0012, "nl": 0x0013, "no": 0x0014,
	"pl": 0x0015, "pt": 0x0016, "rm": 0x0017, "ro": 0x0018,
	"ru": 0x0019, "hr": 0x001A, "sk": 0x001B, "sq": 0x001C,
	"sv": 0x001D, "th": 0x001E, "tr": 0x001F, "ur": 0x0020,
	"id": 0x0021, "uk": 0x0022, "be": 0x0023, "sl": 0x0024,
	"et": 0x0025, "lv": 0x0026, "lt": 0x0027, "tg": 0x0028,
	"fa": 0x0029, "vi": 0x002A, "hy": 0x002B, "az": 0x002C,
	"eu": 0x002D, "hsb": 0x002E, "mk": 0x002F, "st": 0x0030,
	"ts": 0x0031, "tn": 0x0032, "ve": 0x0033, "xh": 0x0034,
	"zu": 0x0035, "af": 0x0036, "ka": 0x0037, "fo": 0x0038,
	"hi": 0x0039, "mt": 0x003A, "se": 0x003B, "ga": 0x003C,
	"ms": 0x003E, "kk": 0x003F, "ky": 0x0040, "sw": 0x0041,
	"tk": 0x0042, "uz": 0x0043, "tt": 0x0044, "bn": 0x0045,
	"pa": 0x0046, "gu": 0x0047, "or": 0x0048, "ta": 0x0049,
	"te": 0x004A, "kn": 0x004B, "ml": 0x004C, "as": 0x004D,
	"mr": 0x004E, "sa": 0x004F, "mn": 0x0050, "bo": 0x0051,
	"cy": 0x0052, "km": 0x0053, "lo": 0x0054, "my": 0x0055,
	"gl": 0x0056, "kok": 0x0057, "sd": 0x0059, "syr": 0x005A,
	"si": 0x005B, "chr": 0x005C, "iu": 0x005D, "am": 0x005E,
	"tzm": 0x005F, "ks": 0x0060, "ne": 0x0061, "fy": 0x0062,
	"ps": 0x0063, "fil": 0x0064, "dv": 0x0065, "ff": 0x0067,
	"ha": 0x0068, "yo": 0x006A, "quz": 0x006B, "nso": 0x006C,
	"ba": 0x006D, "lb": 0x006E, "kl": 0x006F, "ig": 0x0070,
	"om": 0x0072, "ti": 0x0073, "gn": 0x0074, "haw": 0x0075,
	"ii": 0x0078, "arn": 0x007A, "moh": 0x007C, "br": 0x007E,
	"ug": 0x0080, "mi": 0x0081, "oc": 0x0082, "co": 0x0083,
	"gsw": 0x0084, "sah": 0x0085, "qut": 0x0086, "rw": 0x0087,
	"wo": 0x0088, "prs": 0x008C, "gd": 0x0091, "ku": 0x0092,
	// Tags with culture identifiers (>= 0x0400).
	"ar-sa": 0x0401, "bg-bg": 0x0402, "ca-es": 0x0403, "zh-tw": 0x0404,
	"cs-cz": 0x0405, "da-dk": 0x0406, "de-de": 0x0407, "el-gr": 0x0408,
	"en-us": 0x0409, "es-es-tradnl": 0x040A, "fi-fi": 0x040B,
	"fr-fr": 0x040C, "he-il": 0x040D, "hu-hu": 0x040E, "is-is": 0x040F,
	"it-it": 0x0410, "ja-jp": 0x0411, "ko-kr": 0x0412, "nl-nl": 0x0413,
	"nb-no": 0x0414, "pl-pl": 0x0415, "pt-br": 0x0416, "rm-ch": 0x0417,
	"ro-ro": 0x0418, "ru-ru": 0x0419, "hr-hr": 0x041A, "sk-sk": 0x041B,
	"sq-al": 0x041C, "sv-se": 0x041D, "th-th": 0x041E, "tr-tr": 0x041F,
	"ur-pk": 0x0420, "id-id": 0x0421, "uk-ua": 0x0422, "be-by": 0x0423,
	"sl-si": 0x0424, "et-ee": 0x0425, "lv-lv": 0x0426, "lt-lt": 0x0427,
	"tg-cyrl-tj": 0x0428, "fa-ir": 0x0429, "vi-vn": 0x042A,
	"hy-am": 0x042B, "az-latn-az": 0x042C, "eu-es": 0x042D,
	"hsb-de": 0x042E, "mk-mk": 0x042F, "st-za": 0x0430, "ts-za": 0x0431,
	"tn-za": 0x0432, "ve-za": 0x0433, "xh-za": 0x0434, "zu-za": 0x0435,
	"af-za": 0x0436, "ka-ge": 0x0437, "fo-fo": 0x0438, "hi-in": 0x0439,
	"mt-mt": 0x043A, "se-no": 0x043B, "yi-001": 0x043D, "ms-my": 0x043E,
	"kk-kz": 0x043F, "ky-kg": 0x0440, "sw-ke": 0x0441, "tk-tm": 0x0442,
	"uz-latn-uz": 0x0443, "tt-ru": 0x0444, "bn-in": 0x0445,
	"pa-in": 0x0446, "gu-in": 0x0447, "or-in": 0x0448, "ta-in": 0x0449,
	"te-in": 0x044A, "kn-in": 0x044B, "ml-in": 0x044C, "as-in": 0x044D,
	"mr-in": 0x044E, "sa-in": 0x044F, "mn-mn": 0x0450, "bo-cn": 0x0451,
	"cy-gb": 0x0452, "km-kh": 0x0453, "lo-la": 0x0454, "my-mm": 0x0455,
	"gl-es": 0x0456, "kok-in": 0x0457, "syr-sy": 0x045A, "si-lk": 0x045B,
	"chr-cher-us": 0x045C, "iu-cans-ca": 0x045D, "am-et": 0x045E,
	"tzm-arab-ma": 0x045F, "ks-arab": 0x0460, "ne-np": 0x0461,
	"fy-nl": 0x0462, "ps-af": 0x0463, "fil-ph": 0x0464, "dv-mv": 0x0465,
	"ff-ng": 0x0467, "ff-latn-ng": 0x0467, "ha-latn-ng": 0x0468,
	"yo-ng": 0x046A, "quz-bo": 0x046B, "nso-za": 0x046C, "ba-ru": 0x046D,
	"lb-lu": 0x046E, "kl-gl": 0x046F, "ig-ng": 0x0470,
	"kr-latn-ng": 0x0471, "om-et": 0x0472, "ti-et": 0x0473,
	"gn-py": 0x0474, "haw-us": 0x0475, "la-va": 0x0476, "so-so": 0x0477,
	"ii-cn": 0x0478, "arn-cl": 0x047A, "moh-ca": 0x047C, "br-fr": 0x047E,
	"ug-cn": 0x0480, "mi-nz": 0x0481, "oc-fr": 0x0482, "co-fr": 0x0483,
	"gsw-fr": 0x0484, "sah-ru": 0x0485, "rw-rw": 0x0487, "wo-sn": 0x0488,
	"prs-af": 0x048C, "gd-gb": 0x0491, "ku-arab-iq": 0x0492,
	"qps-ploc": 0x0501, "qps-ploca": 0x05FE,
	"ar-iq": 0x0801, "ca-es-valencia": 0x0803, "zh-cn": 0x0804,
	"de-ch": 0x0807, "en-gb": 0x0809, "es-mx": 0x080A, "fr-be": 0x080C,
	"it-ch": 0x0810, "nl-be": 0x0813, "nn-no": 0x0814, "pt-pt": 0x0816,
	"ro-md": 0x0818, "ru-md": 0x0819, "sr-latn-cs": 0x081A,
	"sv-fi": 0x081D, "ur-in": 0x0820, "dsb-de": 0x082E, "tn-bw": 0x0832,
	"se-se": 0x083B, "ga-ie": 0x083C, "ms-bn": 0x083E, "bn-bd": 0x0845,
	"pa-arab-pk": 0x0846, "ta-lk": 0x0849, "sd-arab-pk": 0x0859,
	"iu-latn-ca": 0x085D, "tzm-latn-dz": 0x085F, "ks-deva-in": 0x0860,
	"ne-in": 0x0861, "ff-latn-sn": 0x0867, "quz-ec": 0x086B,
	"ti-er": 0x0873, "qps-plocm": 0x09FF,
	"ar-eg": 0x0C01, "zh-hk": 0x0C04, "de-at": 0x0C07, "en-au": 0x0C09,
	"es-es": 0x0C0A, "fr-ca": 0x0C0C, "sr-cyrl-cs": 0x0C1A,
	"se-fi": 0x0C3B, "mn-mong-mn": 0x0C50, "dz-bt": 0x0C51,
	"quz-pe": 0x0C6B,
	"ar-ly": 0x1001, "zh-sg": 0x1004, "de-lu": 0x1007, "en-ca": 0x1009,
	"es-gt": 0x100A, "fr-ch": 0x100C, "hr-ba": 0x101A, "smj-no": 0x103B,
	"tzm-tfng-ma": 0x105F,
	"ar-dz": 0x1401, "zh-mo": 0x1404, "de-li": 0x1407, "en-nz": 0x1409,
	"es-cr": 0x140A, "fr-lu": 0x140C, "bs-latn-ba": 0x141A,
	"smj-se": 0x143B,
	"ar-ma": 0x1801, "en-ie": 0x1809, "es-pa": 0x180A, "fr-mc": 0x180C,
	"sr-latn-ba": 0x181A, "sma-no": 0x183B,
	"ar-tn": 0x1C01, "en-za": 0x1C09, "es-do": 0x1C0A, "fr-029": 0x1C0C,
	"sr-cyrl-ba": 0x1C1A, "sma-se": 0x1C3B,
	"ar-om": 0x2001, "en-jm": 0x2009, "es-ve": 0x200A, "fr-re": 0x200C,
	"bs-cyrl-ba": 0x201A, "sms-fi": 0x203B,
	"ar-ye": 0x2401, "es-co": 0x240A, "fr-cd": 0x240C,
	"sr-latn-rs": 0x241A, "smn-fi": 0x243B,
	"ar-sy": 0x2801, "en-bz": 0x2809, "es-pe": 0x280A, "fr-sn": 0x280C,
	"sr-cyrl-rs": 0x281A,
	"ar-jo": 0x2C01, "en-tt": 0x2C09, "es-ar": 0x2C0A, "fr-cm": 0x2C0C,
	"sr-latn-me": 0x2C1A,
	"ar-lb": 0x3001, "en-zw": 0x3009, "es-ec": 0x300A, "fr-ci": 0x300C,
	"sr-cyrl-me": 0x301A,
	"ar-kw": 0x3401, "en-ph": 0x3409, "es-cl": 0x340A, "fr-ml": 0x340C,
	"ar-ae": 0x3801, "es-uy": 0x380A, "fr-ma": 0x380C,
	"ar-bh": 0x3C01, "en-hk": 0x3C09, "es-py": 0x3C0A, "fr-ht": 0x3C0C,
	"ar-qa": 0x4001, "en-in": 0x4009, "es-bo": 0x400A,
	"en-my": 0x4409, "es-sv": 0x440A,
	"en-sg": 0x4809, "es-hn": 0x480A,
	"en-ae": 0x4C09, "es-ni": 0x4C0A,
	"es-pr": 0x500A, "es-us": 0x540A, "es-cu": 0x5C0A,
	"bs-cyrl": 0x641A, "bs-latn": 0x681A, "sr-cyrl": 0x6C1A,
	"sr-latn": 0x701A, "smn": 0x703B, "az-cyrl": 0x742C, "sms": 0x743B,
	"zh": 0x7804, "nn": 0x7814, "bs": 0x781A, "az-latn": 0x782C,
	"sma": 0x783B, "uz-cyrl": 0x7843, "mn-cyrl": 0x7850,
	"iu-cans": 0x785D, "tzm-tfng": 0x785F,
	"zh-hant": 0x7C04, "nb": 0x7C14, "sr": 0x7C1A, "tg-cyrl": 0x7C28,
	"dsb": 0x7C2E, "smj": 0x7C3B, "uz-latn": 0x7C43, "pa-arab": 0x7C46,
	"mn-mong": 0x7C50, "sd-arab": 0x7C59, "chr-cher": 0x7C5C,
	"iu-latn": 0x7C5D, "tzm-latn": 0x7C5F, "ff-latn": 0x7C67,
	"ha-latn": 0x7C68, "ku-arab": 0x7C92,
}

var (
	langByName     map[string]LangID
	langLongName   map[LangID]string
	registeredLang map[LangID]struct{}
)

func init() {
	langByName = make(map[string]LangID, len(langNames))
	langLongName = make(map[LangID]string, len(langNames))
	registeredLang = make(map[LangID]struct{}, len(langNames)+len(langTags))
	for _, e := range langNames {
		langByName[strings.ToLower(e.name)] = e.id
		if _, ok := langLongName[e.id]; !ok {
			langLongName[e.id] = e.name
		}
		registeredLang[e.id] = struct{}{}
	}
	for _, id := range langTags {
		registeredLang[id] = struct{}{}
	}
}

// Registered reports whether the identifier appears in the long-name or
// short-tag tables. Unregistered values remain usable as raw identifiers.
func (id LangID) Registered() bool {
	_, ok := registeredLang[id]
	return ok
}

func (id LangID) String() string {
	if name, ok := langLongName[id]; ok {
		return name
	}
	return fmt.Sprintf("%#04x", uint16(id))
}

// LangIDFromName resolves a long name such as "US_English".
// Names are matched case-insensitively.
func LangIDFromName(name string) (LangID, error) {
	if id, ok := langByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("%w: unknown language name %q", ErrInvalidEnum, name)
}

// LangIDFromTag resolves an MS-LCID short tag such as "en-US" or "de".
// Underscores are accepted in place of hyphens.
func LangIDFromTag(tag string) (LangID, error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	t = strings.ReplaceAll(t, "_", "-")
	if id, ok := langTags[t]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("%w: unknown language tag %q", ErrInvalidEnum, tag)
}

// LangIDFromString resolves a long name, a short tag, or a numeric
// identifier ("1033", "0x0409").
func LangIDFromString(s string) (LangID, error) {
	if id, err := LangIDFromName(s); err == nil {
		return id, nil
	}
	if id, err := LangIDFromTag(s); err == nil {
		return id, nil
	}
	if n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16); err == nil {
		return LangID(n), nil
	}
	return 0, fmt.Errorf("%w: unknown language %q", ErrInvalidEnum, s)
}
