package docreq

// Bullet presets accepted by createParagraphBullets.
const (
	BULLET_DISC_CIRCLE_SQUARE              = "BULLET_DISC_CIRCLE_SQUARE"
	BULLET_DIAMONDX_ARROW3D_SQUARE         = "BULLET_DIAMONDX_ARROW3D_SQUARE"
	BULLET_CHECKBOX                        = "BULLET_CHECKBOX"
	BULLET_ARROW_DIAMOND_DISC              = "BULLET_ARROW_DIAMOND_DISC"
	BULLET_STAR_CIRCLE_SQUARE              = "BULLET_STAR_CIRCLE_SQUARE"
	BULLET_ARROW3D_CIRCLE_SQUARE           = "BULLET_ARROW3D_CIRCLE_SQUARE"
	BULLET_LEFTTRIANGLE_DIAMOND_DISC       = "BULLET_LEFTTRIANGLE_DIAMOND_DISC"
	BULLET_DIAMONDX_HOLLOWDIAMOND_SQUARE   = "BULLET_DIAMONDX_HOLLOWDIAMOND_SQUARE"
	BULLET_DIAMOND_CIRCLE_SQUARE           = "BULLET_DIAMOND_CIRCLE_SQUARE"
	NUMBERED_DECIMAL_ALPHA_ROMAN           = "NUMBERED_DECIMAL_ALPHA_ROMAN"
	NUMBERED_DECIMAL_ALPHA_ROMAN_PARENS    = "NUMBERED_DECIMAL_ALPHA_ROMAN_PARENS"
	NUMBERED_DECIMAL_NESTED                = "NUMBERED_DECIMAL_NESTED"
	NUMBERED_UPPERALPHA_ALPHA_ROMAN        = "NUMBERED_UPPERALPHA_ALPHA_ROMAN"
	NUMBERED_UPPERROMAN_UPPERALPHA_DECIMAL = "NUMBERED_UPPERROMAN_UPPERALPHA_DECIMAL"
	NUMBERED_ZERODECIMAL_ALPHA_ROMAN       = "NUMBERED_ZERODECIMAL_ALPHA_ROMAN"
)

const (
	UnitPT  = "PT"
	UnitEMU = "EMU"
)

const (
	StyleTitle       = "TITLE"
	StyleNormalText  = "NORMAL_TEXT"
	AlignmentCenter  = "CENTER"
	CodeFontFamily   = "Courier New"
	codeBackground   = 0.95
	mathEquationText = "[Math Equation: %s]\n"
)
