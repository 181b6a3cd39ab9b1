package starclass

var getStarInfoSchema = []byte(`
{
	"type": "object",
	"properties": {
		"star_name": {
			"type": "string",
			"description": "Name of the star to look up"
		}
	},
	"required": ["star_name"]
}`)

var classifyStarSchema = []byte(`
{
	"type": "object",
	"properties": {
		"temperature": {
			"type": "number",
			"description": "Surface temperature in kelvin"
		},
		"luminosity": {
			"type": "number",
			"description": "Luminosity in multiples of the Sun's"
		}
	},
	"required": ["temperature", "luminosity"]
}`)

var getMoodSchema = []byte(`
{
	"type": "object",
	"properties": {
		"name": {
			"type": "string",
			"description": "Who to ask about",
			"default": "world"
		}
	},
	"required": []
}`)
