package phonetic

// IPAToARPAbet maps one IPA symbol to exactly one ARPAbet code.
// Stress marks translate to the ARPAbet stress digits.
var IPAToARPAbet = Table{
	"ˈ": "1",
	"ˌ": "2",
	// Vowels
	"ɑ":   "AA",
	"ɒ":   "AA",
	"a":   "AA",
	"æ":   "AE",
	"ʌ":   "AH",
	"ɐ":   "AH",
	"ə":   "AH0",
	"ɔ":   "AO",
	"aʊ":  "AW",
	"aw":  "AW",
	"a͡ʊ": "AW",
	"aɪ":  "AY",
	"aj":  "AY",
	"a͡ɪ": "AY",
	"ɛ":   "EH",
	"ɝ":   "ER",
	"ɜ˞":  "ER",
	"ə˞":  "ER",
	"ɚ":   "ER",
	"e":   "EY",
	"eɪ":  "EY",
	"ej":  "EY",
	"e͡ɪ": "EY",
	"ɪ":   "IH",
	"i":   "IY",
	"o":   "OW",
	"oʊ":  "OW",
	"ow":  "OW",
	"o͡ʊ": "OW",
	"ɔɪ":  "OY",
	"ɔj":  "OY",
	"ɔ͡ɪ": "OY",
	"ʊ":   "UH",
	"u":   "UW",
	// Consonants
	"b":   "B",
	"ʧ":   "CH",
	"tʃ":  "CH",
	"t͡ʃ": "CH",
	"d":   "D",
	"ð":   "DH",
	"ɾ":   "D",
	"f":   "F",
	"ɡ":   "G",
	"g":   "G",
	"h":   "HH",
	"ʤ":   "JH",
	"dʒ":  "JH",
	"d͡ʒ": "JH",
	"k":   "K",
	"l":   "L",
	"m":   "M",
	"n":   "N",
	"ŋ":   "NG",
	"p":   "P",
	"ʔ":   "Q",
	"ɹ":   "R",
	"r":   "R",
	"s":   "S",
	"ʃ":   "SH",
	"t":   "T",
	"θ":   "TH",
	"v":   "V",
	"w":   "W",
	"j":   "Y",
	"z":   "Z",
	"ʒ":   "ZH",
}

// ARPAbetToIPA lists the acceptable IPA spellings of each ARPAbet code,
// canonical spelling first. The stress digits map to the stress marks
// ("0" has no mark).
var ARPAbetToIPA = Reverse{
	"0":   {""},
	"1":   {"ˈ"},
	"2":   {"ˌ"},
	"AA":  {"ɑ", "a", "ɒ"},
	"AE":  {"æ"},
	"AH":  {"ʌ"},
	"AH0": {"ə"},
	"AO":  {"ɔ"},
	"AW":  {"aʊ", "a͡ʊ"},
	"AX":  {"ə"},
	"AY":  {"aɪ", "a͡ɪ"},
	"B":   {"b"},
	"CH":  {"ʧ", "tʃ", "t͡ʃ"},
	"D":   {"d"},
	"DH":  {"ð"},
	"DX":  {"ɾ"},
	"EH":  {"ɛ"},
	"ER":  {"ɝ", "ɜ˞", "ə˞", "ɚ"},
	"EY":  {"eɪ", "e͡ɪ", "e"},
	"F":   {"f"},
	"G":   {"ɡ", "g"},
	"HH":  {"h"},
	"IH":  {"ɪ"},
	"IY":  {"i"},
	"JH":  {"ʤ", "dʒ", "d͡ʒ"},
	"K":   {"k"},
	"L":   {"l"},
	"M":   {"m"},
	"N":   {"n"},
	"NG":  {"ŋ"},
	"OW":  {"oʊ", "o͡ʊ", "o"},
	"OY":  {"ɔɪ", "ɔ͡ɪ"},
	"P":   {"p"},
	"Q":   {"ʔ"},
	"R":   {"ɹ", "r"},
	"S":   {"s"},
	"SH":  {"ʃ"},
	"T":   {"t"},
	"TH":  {"θ"},
	"UH":  {"ʊ"},
	"UW":  {"u"},
	"V":   {"v"},
	"W":   {"w"},
	"Y":   {"j"},
	"Z":   {"z"},
	"ZH":  {"ʒ"},
}

// Normalizations folds IPA spellings onto the CMUDict phoneme inventory.
// Length marks and carets are deleted.
var Normalizations = RuleSet{
	Name: "normalize",
	Rules: map[string][]string{
		":": {},
		"ː": {},
		"^": {},

		"ɾ":   {"t"}, // DX is not in CMUDict
		"a":   {"ɑ"},
		"ɑɪ":  {"aɪ"},
		"ɑʊ":  {"aʊ"},
		"a͡ʊ": {"aʊ"},
		"a͡ɪ": {"aɪ"},
		"tʃ":  {"ʧ"},
		"t͡ʃ": {"ʧ"},
		"ɜ˞":  {"ɝ"},
		"ə˞":  {"ɝ"},
		"ɚ":   {"ɝ"},
		"e":   {"eɪ"},
		"e͡ɪ": {"eɪ"},
		"g":   {"ɡ"},
		"dʒ":  {"ʤ"},
		"d͡ʒ": {"ʤ"},
		"o͡ʊ": {"o"},
		"ɔ͡ɪ": {"ɔɪ"},
		"r":   {"ɹ"},
	},
}

// MFAOverlay rewrites symbols into the spellings used by the english_mfa
// acoustic model.
var MFAOverlay = RuleSet{
	Name: "mfa",
	Rules: map[string][]string{
		"ʌ":  {"ɐ"},
		"aʊ": {"aw"},
		"aɪ": {"aj"},
		"o":  {"ow"},
		"oʊ": {"ow"},
		"e":  {"ej"},
		"eɪ": {"ej"},
		"ɔɪ": {"ɔj"},
	},
}

// StressMarks deletes primary and secondary stress marks.
var StressMarks = RuleSet{
	Name: "stress",
	Rules: map[string][]string{
		"ˈ": {},
		"ˌ": {},
	},
}

// MFAInventory is the phone set of the english_mfa acoustic model.
var MFAInventory = NewInventory(
	"ɱ", "ç", "ɐ", "ɜ", "ʎ", "tʷ", "ʉː", "θ", "u", "ɝ", "ɟ", "v", "pʰ", "m̩", "dʒ", "fʷ", "kp", "b", "uː", "ɡʷ", "k",
	"dʲ", "cʰ", "ɚ", "p", "aː", "ʔ", "t", "iː", "mʲ", "c", "tʃ", "m", "ʈʷ", "ɑ", "ʉ", "ʃ", "ow", "e", "ə", "aj", "fʲ",
	"vʲ", "ej", "ɛː", "tʲ", "əw", "tʰ", "ɾʲ", "ʊ", "l", "æ", "ɖ", "j", "ɾ̃", "s", "z", "eː", "ɑː", "ɒː", "cʷ", "i", "ɾ",
	"ɒ", "ɡ", "ɫ", "ɲ", "pʲ", "ɪ", "ɹ", "ɜː", "ð", "ɔj", "vʷ", "ʈ", "ɫ̩", "ʋ", "d̪", "aw", "kʰ", "o", "kʷ", "d", "t̪",
	"ɔ", "ŋ", "ʈʲ", "f", "ɡb", "n̩", "n", "a", "ʒ", "oː", "w", "ɟʷ", "h", "bʲ", "pʷ", "ɛ",
)

// ARPAbetInventory is the phone set of the us_english_arpa acoustic model.
var ARPAbetInventory = ARPAbetToIPA.Inventory()

// MapBack turns aligner output labels back into IPA: MFA conventions are
// undone and ARPAbet codes replaced by their IPA symbol.
var MapBack = map[string]string{
	"ɐ":  "ʌ",
	"aw": "aʊ",
	"aj": "aɪ",
	"ow": "oʊ",
	"ej": "eɪ",
	"ɔj": "ɔɪ",

	"AA":  "ɑ",
	"AE":  "æ",
	"AH":  "ʌ",
	"AH0": "ə",
	"AO":  "ɔ",
	"AW":  "aʊ",
	"AX":  "ə",
	"AY":  "aɪ",
	"B":   "b",
	"CH":  "ʧ",
	"D":   "d",
	"DH":  "ð",
	"DX":  "ɾ",
	"EH":  "ɛ",
	"ER":  "ɝ",
	"EY":  "e",
	"F":   "f",
	"G":   "ɡ",
	"HH":  "h",
	"IH":  "ɪ",
	"IY":  "i",
	"JH":  "ʤ",
	"K":   "k",
	"L":   "l",
	"M":   "m",
	"N":   "n",
	"NG":  "ŋ",
	"OW":  "o",
	"OY":  "ɔɪ",
	"P":   "p",
	"Q":   "ʔ",
	"R":   "ɹ",
	"S":   "s",
	"SH":  "ʃ",
	"T":   "t",
	"TH":  "θ",
	"UH":  "ʊ",
	"UW":  "u",
	"V":   "v",
	"W":   "w",
	"Y":   "j",
	"Z":   "z",
	"ZH":  "ʒ",
}

// IPAVowels is the vowel set used when picking vowel pairs.
var IPAVowels = NewInventory(
	"i", "ʊ", "ɪ", "u", "ɛ", "ɜ", "æ", "ə", "a", "ɒ", "ʌ", "ɔ",
	"aɪ", "eɪ", "ɔɪ", "aʊ", "oʊ", "ɪə", "ɛə", "ʊə",
)

// VowelLetters are the first letters of ARPAbet vowel codes.
const VowelLetters = "AEIOU"
