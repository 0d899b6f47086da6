// Package translit converts Devanagari text to IAST transliteration.
//
// The conversion is total and deterministic for well-formed Devanagari:
// consonants carry the inherent vowel "a" unless followed by a vowel sign or
// virāma, vowel signs replace the inherent vowel, and the modifier signs
// (anusvāra, visarga, candrabindu) map to their IAST diacritics. Code points
// outside the mapping pass through unchanged.
package translit

import "golang.org/x/text/unicode/norm"

const virama = '्'

// vowels maps independent vowel letters.
var vowels = map[rune]string{
	'अ': "a", 'आ': "ā", 'इ': "i", 'ई': "ī",
	'उ': "u", 'ऊ': "ū", 'ऋ': "ṛ", 'ॠ': "ṝ",
	'ऌ': "ḷ", 'ॡ': "ḹ", 'ए': "e", 'ऐ': "ai",
	'ओ': "o", 'औ': "au",
}

// matras maps dependent vowel signs, which replace the inherent "a".
var matras = map[rune]string{
	'ा': "ā", 'ि': "i", 'ी': "ī",
	'ु': "u", 'ू': "ū", 'ृ': "ṛ",
	'ॄ': "ṝ", 'ॢ': "ḷ", 'ॣ': "ḹ",
	'े': "e", 'ै': "ai", 'ो': "o",
	'ौ': "au",
}

// consonants maps consonant letters to their base form without the inherent vowel.
var consonants = map[rune]string{
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "ṅ",
	'च': "c", 'छ': "ch", 'ज': "j", 'झ': "jh", 'ञ': "ñ",
	'ट': "ṭ", 'ठ': "ṭh", 'ड': "ḍ", 'ढ': "ḍh", 'ण': "ṇ",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'व': "v",
	'श': "ś", 'ष': "ṣ", 'स': "s", 'ह': "h", 'ळ': "ḻ",
}

// signs maps modifier signs, punctuation, and digits.
var signs = map[rune]string{
	'ं': "ṃ",  // anusvāra
	'ः': "ḥ",  // visarga
	'ँ': "m̐", // candrabindu
	'ऽ':      "'",  // avagraha
	'ॐ':      "oṃ",
	'।':      "|",
	'॥':      "||",
	'०': "0", '१': "1", '२': "2", '३': "3", '४': "4",
	'५': "5", '६': "6", '७': "7", '८': "8", '९': "9",
}

// ToIAST converts Devanagari text to IAST. Non-Devanagari code points pass
// through unchanged, so text that is already Latin survives intact. The
// output is NFC-normalized so that base letters and combining diacritics
// compose into the precomposed IAST forms.
func ToIAST(text string) string {
	runes := []rune(text)
	var b []byte

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if base, ok := consonants[r]; ok {
			b = append(b, base...)
			// A consonant is followed by a vowel sign, a virāma, or nothing,
			// in which case it carries the inherent "a".
			if i+1 < len(runes) {
				next := runes[i+1]
				if m, ok := matras[next]; ok {
					b = append(b, m...)
					i++
					continue
				}
				if next == virama {
					i++
					continue
				}
			}
			b = append(b, 'a')
			continue
		}

		if v, ok := vowels[r]; ok {
			b = append(b, v...)
			continue
		}
		if s, ok := signs[r]; ok {
			b = append(b, s...)
			continue
		}

		b = append(b, string(r)...)
	}

	return norm.NFC.String(string(b))
}
