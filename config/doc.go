/*
Package config loads the process-wide store settings.

Settings can come from a YAML file:

	endpoint: https://myaccount.documents.azure.com:443/
	key: <master key>
	database: mydb

or from the environment (with optional .env support via godotenv):

	COSMOS_ENDPOINT, COSMOS_KEY, COSMOS_DATABASE

Settings are loaded once at startup and passed to cosmos.NewStore.
*/
package config
