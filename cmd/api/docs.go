package main

// @title           PDV Backoffice API
// @version         1.0
// @description     API de retaguarda para ponto de venda: catálogo, clientes, estoque, vendas, pagamentos e relatórios

// @contact.name   API Support

// @host      localhost:8005
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
