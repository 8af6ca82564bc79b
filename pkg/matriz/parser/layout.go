package parser

// Fixed column layout of an energy matrix, agreed with the teams that
// author the spreadsheets. Indices are 0-based positions into a row as
// returned by excelize (A = 0).
var (
	colsEquipTag     = []int{1}                  // B
	colsEquipDesc    = []int{2, 3}               // C, D
	colsSourceTag    = []int{4, 5, 6}            // E, F, G
	colsSourceDesc   = []int{7, 8, 9, 10, 11}    // H..L
	colsLockMethod   = []int{12, 13}             // M, N
	colsLockPoint    = []int{14, 15, 16, 17, 18} // O..S
	colsLockType     = []int{19, 20}             // T, U
	colsUnlockMethod = []int{25, 26}             // Z, AA
)

// relevantCols is the union of all mapped columns; a row with no data in
// any of them is skipped entirely.
var relevantCols = buildRelevantCols()

func buildRelevantCols() []int {
	seen := map[int]bool{}
	var out []int
	for _, group := range [][]int{
		colsEquipTag, colsEquipDesc, colsSourceTag, colsSourceDesc,
		colsLockMethod, colsLockPoint, colsLockType, colsUnlockMethod,
	} {
		for _, c := range group {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// footerCheckCols are the columns inspected for footer markers: the first
// column of each group plus column A, where the sheet templates place
// legend and sign-off blocks.
var footerCheckCols = []int{0, 1, 2, 3, 4, 7, 12, 14, 19, 25, 26}

// footerKeywords mark the end of the data region. The sheet templates
// append legend/approval/revision blocks below the data; any of these
// words in a check column stops the scan.
var footerKeywords = []string{
	"LEGENDA",
	"ELABORADOR",
	"REVISOR",
	"APROVADOR",
	"PROVIDENCIAS",
	"PROVIDÊNCIAS",
	"DISPOSITIVO",
	"LAYOUT",
	"PÁGINA",
	"PAGINA",
}
